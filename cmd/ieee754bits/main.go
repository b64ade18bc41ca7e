// Command ieee754bits prints the IEEE 754 bit pattern of decimal
// numbers, one bit string per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/johnlouge/ieee754"
)

func main() {
	width := flag.Int("p", 64, "target width in bits: 16, 32, 64 or 80")
	mode := flag.String("r", "guard", `rounding mode: "guard" or "even"`)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-p width] [-r mode] value...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("cannot initialize zap logger: " + err.Error())
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// sync before exiting so the record is not lost; zap's Fatal would
	// call os.Exit before the deferred Sync runs
	fail := func(msg string, kv ...interface{}) {
		sugar.Errorw(msg, kv...)
		logger.Sync()
		os.Exit(1)
	}

	enc := ieee754.Encoder{Precision: ieee754.Precision(*width)}
	switch *mode {
	case "guard":
		enc.Rounding = ieee754.RoundGuardBit
	case "even":
		enc.Rounding = ieee754.RoundNearestEven
	default:
		fail("unknown rounding mode", "mode", *mode)
	}

	for _, arg := range flag.Args() {
		d, err := decimal.NewFromString(arg)
		if err != nil {
			fail("not a decimal number", "value", arg, "error", err)
		}
		bits, err := enc.Encode(d)
		if err != nil {
			fail("encoding failed", "value", arg, "error", err)
		}
		fmt.Println(bits)
	}
}
