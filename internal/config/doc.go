// Package config loads, normalizes, and validates stylesub configuration.
//
// Settings come from a TOML file (explicit path, ~/.config/stylesub/config.toml,
// or ./stylesub.toml) layered over repository defaults, with environment
// fallbacks such as STYLESUB_SEED. The style section maps directly onto
// subtitle.PoolOptions so the generated pool always reflects one validated
// source of truth.
package config
