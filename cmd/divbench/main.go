/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command divbench cross-checks divrem's four algorithms against each
// other, against the platform's native operators, and against math/big,
// then reports how long each width's run took (all four algorithms and
// the reference together; there is no per-algorithm timing).
package main

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/onflow/divrem"
)

func main() {
	var (
		widths  []int
		iters   int
		verbose bool
	)

	pflag.IntSliceVar(&widths, "widths", []int{8, 16, 32, 64, 128}, "widths to exercise")
	pflag.IntVar(&iters, "iterations", 100000, "random samples per width")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pflag.Parse()

	logLevel := zerolog.InfoLevel
	if verbose {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(logLevel).
		With().Timestamp().Logger()
	divrem.SetLogger(logger)

	for _, w := range widths {
		switch w {
		case 8:
			runWidth8(logger, iters)
		case 16:
			runWidth16(logger, iters)
		case 32:
			runWidth32(logger, iters)
		case 64:
			runWidth64(logger, iters)
		case 128:
			runWidth128(logger, iters)
		default:
			logger.Warn().Int("width", w).Msg("unsupported width, skipping")
		}
	}
}

func runWidth8(logger zerolog.Logger, iters int) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		duo := uint8(rand.Uint32())
		div := uint8(rand.Uint32())
		if div == 0 {
			continue
		}
		wantQ, wantR := duo/div, duo%div
		for name, fn := range map[string]func(uint8, uint8) (uint8, uint8){
			"binary_long": divrem.UDivRemBinaryLong8,
			"delegate":    divrem.UDivRemDelegate8,
			"trifecta":    divrem.UDivRemTrifecta8,
			"asymmetric":  divrem.UDivRemAsymmetric8,
		} {
			gotQ, gotR := fn(duo, div)
			if gotQ != wantQ || gotR != wantR {
				fmt.Printf("MISMATCH width=8 algo=%s duo=%d div=%d got=(%d,%d) want=(%d,%d)\n",
					name, duo, div, gotQ, gotR, wantQ, wantR)
			}
		}
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("iterations", iters).Msg("width 8 done")
}

func runWidth16(logger zerolog.Logger, iters int) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		duo := uint16(rand.Uint32())
		div := uint16(rand.Uint32())
		if div == 0 {
			continue
		}
		wantQ, wantR := duo/div, duo%div
		for name, fn := range map[string]func(uint16, uint16) (uint16, uint16){
			"binary_long": divrem.UDivRemBinaryLong16,
			"delegate":    divrem.UDivRemDelegate16,
			"trifecta":    divrem.UDivRemTrifecta16,
			"asymmetric":  divrem.UDivRemAsymmetric16,
		} {
			gotQ, gotR := fn(duo, div)
			if gotQ != wantQ || gotR != wantR {
				fmt.Printf("MISMATCH width=16 algo=%s duo=%d div=%d got=(%d,%d) want=(%d,%d)\n",
					name, duo, div, gotQ, gotR, wantQ, wantR)
			}
		}
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("iterations", iters).Msg("width 16 done")
}

func runWidth32(logger zerolog.Logger, iters int) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		duo := rand.Uint32()
		div := rand.Uint32()
		if div == 0 {
			continue
		}
		wantQ, wantR := duo/div, duo%div
		for name, fn := range map[string]func(uint32, uint32) (uint32, uint32){
			"binary_long": divrem.UDivRemBinaryLong32,
			"delegate":    divrem.UDivRemDelegate32,
			"trifecta":    divrem.UDivRemTrifecta32,
			"asymmetric":  divrem.UDivRemAsymmetric32,
		} {
			gotQ, gotR := fn(duo, div)
			if gotQ != wantQ || gotR != wantR {
				fmt.Printf("MISMATCH width=32 algo=%s duo=%d div=%d got=(%d,%d) want=(%d,%d)\n",
					name, duo, div, gotQ, gotR, wantQ, wantR)
			}
		}
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("iterations", iters).Msg("width 32 done")
}

func runWidth64(logger zerolog.Logger, iters int) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		duo := rand.Uint64()
		div := rand.Uint64()
		if div == 0 {
			continue
		}
		wantQ, wantR := duo/div, duo%div
		for name, fn := range map[string]func(uint64, uint64) (uint64, uint64){
			"binary_long": divrem.UDivRemBinaryLong64,
			"delegate":    divrem.UDivRemDelegate64,
			"trifecta":    divrem.UDivRemTrifecta64,
			"asymmetric":  divrem.UDivRemAsymmetric64,
		} {
			gotQ, gotR := fn(duo, div)
			if gotQ != wantQ || gotR != wantR {
				fmt.Printf("MISMATCH width=64 algo=%s duo=%d div=%d got=(%d,%d) want=(%d,%d)\n",
					name, duo, div, gotQ, gotR, wantQ, wantR)
			}
		}
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("iterations", iters).Msg("width 64 done")
}

func runWidth128(logger zerolog.Logger, iters int) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		duo := randUint128()
		div := randUint128()
		if div.Hi == 0 && div.Lo == 0 {
			continue
		}

		wantQ, wantR := bigDivMod(duo, div)

		for name, fn := range map[string]func(divrem.Uint128, divrem.Uint128) (divrem.Uint128, divrem.Uint128){
			"binary_long": divrem.UDivRemBinaryLong128,
			"delegate":    divrem.UDivRemDelegate128,
			"trifecta":    divrem.UDivRemTrifecta128,
			"asymmetric":  divrem.UDivRemAsymmetric128,
		} {
			gotQ, gotR := fn(duo, div)
			if gotQ != wantQ || gotR != wantR {
				fmt.Printf("MISMATCH width=128 algo=%s duo=%+v div=%+v got=(%+v,%+v) want=(%+v,%+v)\n",
					name, duo, div, gotQ, gotR, wantQ, wantR)
			}
		}
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("iterations", iters).Msg("width 128 done")
}

func randUint128() divrem.Uint128 {
	return divrem.NewUint128(rand.Uint64(), rand.Uint64())
}

var big64 = new(big.Int).Lsh(big.NewInt(1), 64)

func toBig(v divrem.Uint128) *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Mul(b, big64)
	b.Add(b, new(big.Int).SetUint64(v.Lo))
	return b
}

func fromBig(b *big.Int) divrem.Uint128 {
	mask := new(big.Int).Sub(big64, big.NewInt(1))
	lo := new(big.Int).And(b, mask)
	hi := new(big.Int).Rsh(b, 64)
	return divrem.NewUint128(hi.Uint64(), lo.Uint64())
}

// bigDivMod is the independent oracle width-128's cross-checks lean on.
func bigDivMod(duo, div divrem.Uint128) (quo, rem divrem.Uint128) {
	q, r := new(big.Int).QuoRem(toBig(duo), toBig(div), new(big.Int))
	return fromBig(q), fromBig(r)
}
