//go:build !poison

package memlink

// poisonBlocks enables poison-filling of destructed storage. Build
// with the "poison" tag to turn it on.
const poisonBlocks = false
