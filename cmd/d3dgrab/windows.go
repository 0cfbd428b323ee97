package main

import (
	"fmt"
	"strconv"

	"github.com/bnema/d3dgrab/internal/ui"
	"github.com/bnema/d3dgrab/internal/win32"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var windowsAll bool

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List top-level windows visible to the resolver",
	Long: `List top-level windows the window resolver would consider. By default only
windows owned by this process are shown, which is what device acquisition
binds to; --all lists every top-level window on the system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid := win32.CurrentPID()

		var found []win32.Window
		err := win32.EnumTopLevel(func(h win32.HWND) bool {
			owner := win32.WindowPID(h)
			if windowsAll || owner == pid {
				found = append(found, win32.Window{
					Handle: h,
					PID:    owner,
					Title:  win32.WindowTitle(h),
				})
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("window enumeration failed: %w", err)
		}

		fmt.Println(ui.FormatAppHeader("WINDOWS", fmt.Sprintf("pid %d", pid)))
		fmt.Println()

		if len(found) == 0 {
			fmt.Println(ui.MutedStyle.Render("no matching top-level windows"))
			return nil
		}

		rows := make([][]string, 0, len(found))
		for _, w := range found {
			own := ""
			if w.PID == pid {
				own = "◀"
			}
			rows = append(rows, []string{
				fmt.Sprintf("0x%08X", uintptr(w.Handle)),
				strconv.FormatUint(uint64(w.PID), 10),
				own,
				w.Title,
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorSubtle)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return ui.TableHeaderStyle
				}
				return ui.TableCellStyle
			}).
			Headers("HANDLE", "PID", "OWN", "TITLE").
			Rows(rows...)

		fmt.Println(t.String())
		return nil
	},
}

func init() {
	windowsCmd.Flags().BoolVar(&windowsAll, "all", false, "include windows owned by other processes")
}
