// Command bigcalc is an arbitrary-precision calculator built the same way
// oisee-z80-optimizer/cmd/z80opt's main.go is structured: a root
// cobra.Command with one subcommand per operation, each parsing its
// operands with bigint.FromString and printing the formatted result. It
// exists to give every public operation in the bigint package a real,
// runnable caller.
package main

import (
	"fmt"
	"os"

	"github.com/edadma/bigint"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func parseOperand(s string) *bigint.BigInt {
	v, ok := bigint.FromString(s, 10)
	if !ok {
		glog.Fatalf("bigcalc: invalid operand %q", s)
	}
	return v
}

func binaryCmd(use, short string, op func(a, b *bigint.BigInt) *bigint.BigInt) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a := parseOperand(args[0])
			b := parseOperand(args[1])
			fmt.Println(op(a, b))
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
	}

	root.AddCommand(binaryCmd("add", "Add two integers", bigint.Add))
	root.AddCommand(binaryCmd("sub", "Subtract two integers", bigint.Sub))
	root.AddCommand(binaryCmd("mul", "Multiply two integers", bigint.Mul))
	root.AddCommand(binaryCmd("div", "Truncating division of two integers", bigint.Div))
	root.AddCommand(binaryCmd("mod", "Truncating remainder of two integers", bigint.Mod))
	root.AddCommand(binaryCmd("gcd", "Greatest common divisor", bigint.GCD))
	root.AddCommand(binaryCmd("lcm", "Least common multiple", bigint.LCM))
	root.AddCommand(binaryCmd("and", "Bitwise AND of two magnitudes", bigint.And))
	root.AddCommand(binaryCmd("or", "Bitwise OR of two magnitudes", bigint.Or))
	root.AddCommand(binaryCmd("xor", "Bitwise XOR of two magnitudes", bigint.Xor))

	root.AddCommand(&cobra.Command{
		Use:   "pow BASE EXP",
		Short: "Raise BASE to the (native uint32) EXP power",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			base := parseOperand(args[0])
			exp := parseOperand(args[1])
			e, ok := exp.ToUint32()
			if !ok {
				glog.Fatalf("bigcalc: exponent %q does not fit in uint32", args[1])
			}
			fmt.Println(bigint.Pow(base, e))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "modpow BASE EXP MOD",
		Short: "Modular exponentiation",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			base := parseOperand(args[0])
			exp := parseOperand(args[1])
			mod := parseOperand(args[2])
			result := bigint.ModPow(base, exp, mod)
			if result == nil {
				glog.Fatalf("bigcalc: modpow: zero modulus %q or negative exponent %q", args[2], args[1])
			}
			fmt.Println(result)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "isqrt N",
		Short: "Integer square root",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(bigint.Isqrt(parseOperand(args[0])))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "factorial N",
		Short: "Factorial of a native uint32 N",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := parseOperand(args[0])
			nu, ok := n.ToUint32()
			if !ok {
				glog.Fatalf("bigcalc: factorial: %q does not fit in uint32", args[0])
			}
			fmt.Println(bigint.Factorial(nu))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "isprime N",
		Short: "Deterministic primality test",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(bigint.IsPrime(parseOperand(args[0]), 20))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "nextprime N",
		Short: "Smallest prime >= N",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(bigint.NextPrime(parseOperand(args[0])))
		},
	})

	var randomBits uint
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "A random nonnegative integer of --bits bits",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(bigint.Random(randomBits))
		},
	}
	randomCmd.Flags().UintVar(&randomBits, "bits", 64, "number of bits of entropy")
	root.AddCommand(randomCmd)

	root.AddCommand(&cobra.Command{
		Use:   "random-range LO HI",
		Short: "A random integer uniformly drawn from [LO, HI)",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			lo := parseOperand(args[0])
			hi := parseOperand(args[1])
			result := bigint.RandomRange(lo, hi)
			if result == nil {
				glog.Fatalf("bigcalc: random-range: invalid range [%s, %s)", args[0], args[1])
			}
			fmt.Println(result)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
