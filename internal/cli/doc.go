// Package cli provides the terminal user interface components for clientrec.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: numbered list of actions (main menu, dashboard, submenus)
//   - ClientList: filterable list of clients, returns the selected one
//   - Form: text inputs with tab navigation, returns the entered values
//   - Task: spinner shown while a job such as an export runs
//   - Batch: progress bar over several jobs run one after the other
//
// Each component has a Run helper that starts a tea.Program, waits for it to
// finish and returns the result, or [ErrCancelled] when the user backs out.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
