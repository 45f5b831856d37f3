package model

// Package model defines the small value types shared by the clock core and its
// hosts: the closed hand-thickness enumeration and per-frame time samples.
