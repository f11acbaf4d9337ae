package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sked/pkg/calendar"
)

const cellWidth = 5

// Month renders the 42-cell grid. Other-month days print faint, today is
// highlighted, and days carrying tasks show their count under the number.
func (pp *PrettyPrint) Month(year int, month time.Month, cells []calendar.Cell) {
	tf := color.New(color.Bold, color.Underline)
	hf := color.New(color.Faint)
	of := color.New(color.Faint)
	df := color.New()
	now := color.New(color.FgHiWhite, color.BgBlue, color.Bold)
	busy := color.New(color.FgCyan)

	width := 7 * cellWidth
	title := fmt.Sprintf("%s %d", month, year)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	for _, h := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		_, _ = hf.Printf("%-*s", cellWidth, h)
	}
	fmt.Println("")

	for row := 0; row < len(cells)/7; row++ {
		// Day numbers.
		for col := 0; col < 7; col++ {
			c := cells[row*7+col]
			label := fmt.Sprintf("%2d", c.Day)
			switch {
			case c.OtherMonth:
				_, _ = of.Print(label)
			case c.Today:
				_, _ = now.Print(label)
			default:
				_, _ = df.Print(label)
			}
			fmt.Print(strings.Repeat(" ", cellWidth-len(label)))
		}
		fmt.Println("")
		// Task counts under the numbers, only when the row has any.
		if rowHasTasks(cells[row*7 : row*7+7]) {
			for col := 0; col < 7; col++ {
				c := cells[row*7+col]
				if c.HasTasks() {
					label := fmt.Sprintf("*%d", len(c.Tasks))
					_, _ = busy.Print(label)
					fmt.Print(strings.Repeat(" ", cellWidth-len(label)))
				} else {
					fmt.Print(strings.Repeat(" ", cellWidth))
				}
			}
			fmt.Println("")
		}
	}
	fmt.Println("")
}

// Day prints the preview lines for one grid cell, the same tiering the
// month hover shows.
func (pp *PrettyPrint) Day(c calendar.Cell) {
	f := color.New(color.Faint)
	for _, line := range c.Preview {
		_, _ = f.Printf("  %s\n", line)
	}
}

func rowHasTasks(cells []calendar.Cell) bool {
	for _, c := range cells {
		if c.HasTasks() {
			return true
		}
	}
	return false
}
