package common

import "strconv"

// ChainID identifies a destination chain in the bridge network's numbering.
type ChainID uint16

// NativeChainID is the chain the forge itself lives on. Claims targeting it
// never produce a bridge dispatch.
const NativeChainID ChainID = 1

func (c ChainID) IsNative() bool {
	return c == NativeChainID
}

func (c ChainID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
