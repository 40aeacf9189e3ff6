package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hanabiforbots/internal/arena"
	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/game"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// printReport renders the series results as a table, best lineup first
func printReport(report *arena.Report, elapsed time.Duration) {
	entries := make([]arena.Entry, len(report.Entries))
	copy(entries, report.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stats.Mean() > entries[j].Stats.Mean()
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("lineup"),
		headerStyle.Render("games"),
		headerStyle.Render("mean"),
		headerStyle.Render("stddev"),
		headerStyle.Render("min"),
		headerStyle.Render("max"),
		headerStyle.Render("perfect"),
		headerStyle.Render("failures"))

	for _, e := range entries {
		failures := "."
		if e.Failures > 0 {
			failures = failStyle.Render(fmt.Sprintf("%d", e.Failures))
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.2f\t%d\t%d\t%d\t%s\n",
			nameStyle.Render(e.Lineup),
			e.Stats.Games,
			scoreStyle.Render(fmt.Sprintf("%.2f", e.Stats.Mean())),
			e.Stats.StdDev(),
			e.Stats.MinScore,
			e.Stats.MaxScore,
			e.Stats.Perfect,
			failures)
	}

	w.Flush()

	fmt.Printf("\n%d games per lineup from seed %d in %v\n",
		report.Games, report.Seed, elapsed.Truncate(time.Millisecond))
}

// printBoard renders the final position through the full-access window
func printBoard(board game.FullAccess) {
	stacks := board.Stacks()
	heights := make([]string, 0, len(stacks))
	for _, color := range board.Rules().Colors() {
		heights = append(heights, fmt.Sprintf("%s%d", color, stacks[color]))
	}
	fmt.Printf("%s\n", headerStyle.Render("stacks"))
	fmt.Printf("%s\n\n", cardStyle.Render(strings.Join(heights, " ")))

	if discards := board.Discards(); len(discards) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("discards"))
		fmt.Printf("%s\n\n", formatCards(discards))
	}

	fmt.Printf("%s\n", headerStyle.Render("hands"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for seat := 0; seat < board.NumPlayers(); seat++ {
		hand := formatCards(board.Hand(seat))
		if hand == "" {
			hand = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", nameStyle.Render(fmt.Sprintf("seat %d", seat)), hand)
	}
	w.Flush()
	fmt.Printf("\n")
}

// printResult renders the single-game outcome line
func printResult(result arena.Result, maxScore int) {
	fmt.Printf("%s after %d turns, score %s of %d\n",
		result.Status,
		result.Turns,
		scoreStyle.Render(fmt.Sprintf("%d", result.Score)),
		maxScore)
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
