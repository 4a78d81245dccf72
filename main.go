package main

import (
	"fmt"

	"github.com/moveothers/fibonacci/fibonacci"
)

func main() {
	positions := []string{"0", "1", "2", "10", "7", "93", "94", "-5", "2.5", "abc"}
	for _, p := range positions {
		n, err := fibonacci.Fibonacci(p)
		if err != nil {
			fmt.Println("---err---", err)
			continue
		}
		fmt.Printf("fibonacci(%s) = %d\n", p, n)
	}
}
