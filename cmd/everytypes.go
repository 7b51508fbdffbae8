package main

import (
	"encoding/hex"
	"fmt"

	everytypes "github.com/everyprotocol/every-types-go"
)

func main() {
	flags := everytypes.PickerFlags{RowFrom: everytypes.HereElements}.Encode()
	elems := []everytypes.Cell{
		cellFromHex("0cb8dd44f076c2a2bc61da2fe9bd5be9201357571a98fcea73737779070cafa7"),
		cellFromHex("000000000000000000000000000000000000000000000000000000000012345a"),
	}

	picker, err := everytypes.NewElementPicker(flags, elems)
	if err != nil {
		panic(err)
	}

	oid := everytypes.OID{Universe: 31337, Set: 17, ID: 1}
	desc := everytypes.Descriptor{Kind: 17, Rev: 1, Krev: 1, Srev: 1}

	out, err := picker.Resolve(nil, oid, desc)
	if err != nil {
		panic(err)
	}

	fmt.Println("resolved elements for", oid)
	for i, c := range out {
		fmt.Printf("  [%d] %s\n", i, hex.EncodeToString(c[:]))
	}
}

func cellFromHex(s string) everytypes.Cell {
	var c everytypes.Cell
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	copy(c[:], b)
	return c
}
