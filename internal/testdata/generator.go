// Package testdata builds synthetic bank statement CSV text for tests.
package testdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var merchants = []string{
	"UBER EATS* SUSHI", "AMAZON.COM*XYZ", "WOOLWORTHS 2041", "SPOTIFY P12345",
	"SHELL FUEL 883", "NETFLIX.COM", "STARBUCKS COFFEE 17", "SALARY ACME PTY",
}

// Headered produces a statement with named debit/credit columns in the
// given delimiter. Output is deterministic for a given seed.
func Headered(delim rune, rows int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	d := string(delim)

	var b strings.Builder
	b.WriteString(strings.Join([]string{
		"Posted Date", "Description", "Debit Amount", "Credit Amount", "Balance",
	}, d))
	b.WriteString("\n")

	balance := 2500.00
	day := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		desc := merchants[rng.Intn(len(merchants))]
		amount := float64(rng.Intn(15000)+100) / 100
		debit, credit := fmt.Sprintf("%.2f", amount), ""
		balance -= amount
		if strings.HasPrefix(desc, "SALARY") {
			debit, credit = "", fmt.Sprintf("%.2f", amount)
			balance += 2 * amount
		}
		b.WriteString(strings.Join([]string{
			day.AddDate(0, 0, i).Format("02/01/2006"), desc, debit, credit,
			fmt.Sprintf("%.2f", balance),
		}, d))
		b.WriteString("\n")
	}
	return b.String()
}

// Headerless produces a bare date,amount,description statement with a
// signed amount column and no header row.
func Headerless(rows int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	day := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		desc := merchants[rng.Intn(len(merchants))]
		amount := -float64(rng.Intn(15000)+100) / 100
		if strings.HasPrefix(desc, "SALARY") {
			amount = -amount
		}
		fmt.Fprintf(&b, "%s,%.2f,%s\n", day.AddDate(0, 0, i).Format("02/01/2006"), amount, desc)
	}
	return b.String()
}
