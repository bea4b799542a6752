//go:build poison

package memlink

// poisonBlocks enables poison-filling of destructed storage.
const poisonBlocks = true
