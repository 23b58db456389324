package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	wideint "github.com/wideint/wideint"
)

// This is a quick-and-dirty inspector for 128-bit limb pairs. Feed it the
// hi and lo words of a value and it prints every view the library can
// produce: decimal, hex, the signed reinterpretation, the float64
// round-trip, and the raw structure. Handy when a fuzz failure hands you a
// pair of words and you want to see what they actually mean.
//
// It is not part of the library proper; it lives here the same way other
// one-off diagnostic tools do.

const usage = `Limb pair inspector

Usage: limbs <hi> <lo>

<hi> and <lo> are uint64 words, decimal or 0x-prefixed hex.`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) != 3 {
		return fmt.Errorf("%s", usage)
	}

	hi, err := strconv.ParseUint(os.Args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid hi word %q: %v", os.Args[1], err)
	}
	lo, err := strconv.ParseUint(os.Args[2], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid lo word %q: %v", os.Args[2], err)
	}

	u := wideint.Uint128FromRaw(hi, lo)
	i := u.AsInt128()

	fmt.Printf("unsigned:  %d\n", u)
	fmt.Printf("signed:    %d\n", i)
	fmt.Printf("hex:       %#x\n", u)
	fmt.Printf("bitlen:    %d\n", u.BitLen())
	fmt.Printf("float64:   %.8g\n", u.AsFloat64())

	rt, inRange := wideint.Uint128FromFloat64(u.AsFloat64())
	fmt.Printf("roundtrip: %d (inRange=%v, drift=%d)\n",
		rt, inRange, wideint.DifferenceUint128(u, rt))

	if u.IsUint64() {
		fmt.Printf("uint64:    %d\n", u.AsUint64())
	}
	if i.IsInt64() {
		fmt.Printf("int64:     %d\n", i.AsInt64())
	}

	spew.Dump(u)
	return nil
}
