package primes_test

import (
	"fmt"

	"github.com/katalvlaran/mathx/primes"
)

// ExamplePrimeFactors streams the factors of 1548 lazily.
func ExamplePrimeFactors() {
	for p := range primes.PrimeFactors(1548) {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: 2 2 3 3 43
}

// ExampleFactorize groups factors into (prime, exponent) pairs.
func ExampleFactorize() {
	fs, _ := primes.Factorize(360)
	for _, f := range fs {
		fmt.Printf("%d^%d ", f.P, f.E)
	}
	fmt.Println()
	// Output: 2^3 3^2 5^1
}

// ExampleDivisors lists every divisor of 36.
func ExampleDivisors() {
	ds, _ := primes.Divisors(36)
	fmt.Println(ds)
	// Output: [1 2 3 4 6 9 12 18 36]
}

// ExampleIsPrime checks a Mersenne prime.
func ExampleIsPrime() {
	fmt.Println(primes.IsPrime(2147483647), primes.IsPrime(2147483649))
	// Output: true false
}
