package platform

// Package platform wraps host services the clock depends on: wall-clock time,
// one-shot timers, and the filesystem/OS helpers used by the snapshot tool.
