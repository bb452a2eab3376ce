// Package config defines the format-agnostic configuration model for
// hyprshade, along with the Loader and Converter interfaces used to read it.
//
// Concrete implementations of the interfaces, such as for HCL, are provided
// in separate packages.
package config
