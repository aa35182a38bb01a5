package expiration_test

import (
	"fmt"

	"github.com/karupanerura/pocketcache/expiration"
)

func ExampleExpiration_ToSeconds() {
	fmt.Println(expiration.Seconds(30).ToSeconds())
	fmt.Println(expiration.Minutes(5).ToSeconds())
	fmt.Println(expiration.Hours(3).ToSeconds())
	fmt.Println(expiration.Default.ToSeconds())

	// Output:
	// 30
	// 300
	// 10800
	// 3600
}

func ExampleParse() {
	e, err := expiration.Parse("15 minutes")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(e, e.Duration())

	// Output:
	// 15m 15m0s
}
