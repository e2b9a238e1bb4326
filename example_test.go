package fraction_test

import (
	"errors"
	"fmt"

	"github.com/QuangTung97/fraction"
)

func ExampleNew() {
	r, err := fraction.New(4, -8)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: -1/2
}

func ExampleNew_zeroDenominator() {
	_, err := fraction.New(1, 0)
	fmt.Println(errors.Is(err, fraction.ErrDivisionByZero))
	// Output: true
}

func ExampleRational_Add() {
	sum := fraction.MustNew(1, 6).Add(fraction.MustNew(1, 3))
	fmt.Println(sum)
	// Output: 1/2
}

func ExampleRational_Div() {
	_, err := fraction.MustNew(1, 2).Div(fraction.MustNew(0, 5))
	fmt.Println(err)
	// Output: fraction: division by zero: 1/2 / 0/1
}

func ExampleRational_Int64() {
	fmt.Println(fraction.MustNew(7, 2).Int64(), fraction.MustNew(-7, 2).Int64())
	// Output: 3 -3
}

func ExampleRational_Decimal() {
	fmt.Println(fraction.MustNew(2, 3).Decimal(4))
	// Output: 0.6667
}

func ExampleParse() {
	r, err := fraction.Parse("80/100")
	if err != nil {
		panic(err)
	}
	fmt.Println(r, r.Float64())
	// Output: 4/5 0.8
}
