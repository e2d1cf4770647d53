package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/hebclock"
	"github.com/npillmayer/hebclock/hebtime"
	"github.com/npillmayer/hebclock/niqqud"
	"github.com/npillmayer/hebclock/numerals"
	"github.com/pterm/pterm"
)

// printHour prints a table of all 60 minutes of an hour.
func (intp *Intp) printHour(hour int) error {
	data := [][]string{
		{"Time", "Phrase"},
	}
	for minute := 0; minute < 60; minute++ {
		s, err := hebtime.Convert(hour, minute, intp.opts)
		if err != nil {
			return err
		}
		data = append(data, []string{
			fmt.Sprintf("%02d:%02d", hour, minute),
			intp.display(s),
		})
	}
	pterm.Printf("Hour %02d, %s\n", hour, hebtime.PartOfDay(hour))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

// printNumerals prints a table of absolute and conjunctive numerals.
func printNumerals(plain bool) {
	form := func(s string) string {
		if plain {
			return niqqud.Strip(s)
		}
		return s
	}
	data := [][]string{
		{"n", "Absolute", "Conjunctive", "Hour", "To the hour"},
	}
	for n := 1; n <= 59; n++ {
		row := []string{fmt.Sprintf("%d", n), form(numerals.Absolute(n)), "-", "", ""}
		if n >= 3 {
			row[2] = form(numerals.Conjunctive(n))
		}
		if n <= 12 {
			row[3] = form(numerals.Hour(n))
			row[4] = form(numerals.Lamed(n))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printDay writes the phrases for every minute of a day, one per line.
func printDay(w io.Writer, opts hebtime.Options) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Hebrew word clock [%s], all times (%s)\n", hebclock.Language, opts)
	fmt.Fprintln(bw, rule)
	for hour := 0; hour < 24; hour++ {
		fmt.Fprintf(bw, "\n--- Hour: %02d:xx ---\n\n", hour)
		for minute := 0; minute < 60; minute++ {
			s := hebtime.MustConvert(hour, minute, opts)
			fmt.Fprintf(bw, "%02d:%02d → %s\n", hour, minute, s)
		}
	}
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Total times printed: %d\n", 24*60)
	return bw.Flush()
}
