// Package dialect carries the static keyword and type tables for the two
// supported shading languages, HLSL and GLSL. Tables are fixed per dialect;
// nothing is discovered from the source being formatted.
package dialect
