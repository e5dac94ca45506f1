package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperrors "github.com/dmoreira/cityatlas/pkg/errors"
	"github.com/dmoreira/cityatlas/pkg/registry"
)

func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu for managing cities and route graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []registry.Option
			if c.Config.Routes.Directed {
				opts = append(opts, registry.WithDirectedRoutes())
			}
			m := newMenuModel(registry.New(opts...), c.Config)
			_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// menuAction identifies one entry of the main menu.
type menuAction int

const (
	actRegister menuAction = iota
	actRemove
	actTraversals
	actAddDistrict
	actListDistricts
	actAddRoute
	actBFS
	actDFS
	actShortestPath
	actExportDSW
	actQuit
)

// menuItem is a selectable action plus the input prompts it needs.
type menuItem struct {
	title   string
	act     menuAction
	prompts []string
}

var menuItems = []menuItem{
	{"Register city", actRegister, []string{"City ID", "City name"}},
	{"Remove city", actRemove, []string{"City ID"}},
	{"Show traversals", actTraversals, nil},
	{"Add district", actAddDistrict, []string{"City ID", "District name"}},
	{"List districts", actListDistricts, []string{"City ID"}},
	{"Add route", actAddRoute, []string{"City ID", "From district", "To district", "Weight (blank = default)"}},
	{"Breadth-first search", actBFS, []string{"City ID", "Start district"}},
	{"Depth-first search", actDFS, []string{"City ID", "Start district"}},
	{"Shortest path", actShortestPath, []string{"City ID", "Source district", "Target district"}},
	{"Export to BST + DSW balance", actExportDSW, nil},
	{"Quit", actQuit, nil},
}

// menuState is the visible screen of the menu model.
type menuState int

const (
	stateMenu menuState = iota
	stateForm
	stateResult
)

// menuModel is the bubbletea model driving the interactive session.
// All registry state lives in memory for the duration of the program.
type menuModel struct {
	reg *registry.Registry
	cfg Config

	state   menuState
	cursor  int
	current menuItem
	inputs  []textinput.Model
	focus   int
	result  string
}

func newMenuModel(reg *registry.Registry, cfg Config) menuModel {
	return menuModel{reg: reg, cfg: cfg}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(key)
	case stateForm:
		return m.updateForm(key)
	default: // stateResult
		m.state = stateMenu
		return m, nil
	}
}

func (m menuModel) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		item := menuItems[m.cursor]
		if item.act == actQuit {
			return m, tea.Quit
		}
		m.current = item
		if len(item.prompts) == 0 {
			m.result = m.run(item.act, nil)
			m.state = stateResult
			return m, nil
		}
		m.inputs = make([]textinput.Model, len(item.prompts))
		for i, prompt := range item.prompts {
			ti := textinput.New()
			ti.Placeholder = prompt
			ti.CharLimit = 64
			m.inputs[i] = ti
		}
		m.focus = 0
		m.inputs[0].Focus()
		m.state = stateForm
	}
	return m, nil
}

func (m menuModel) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.inputs[m.focus].Blur()
			m.focus++
			m.inputs[m.focus].Focus()
			return m, nil
		}
		values := make([]string, len(m.inputs))
		for i, in := range m.inputs {
			values[i] = in.Value()
		}
		m.result = m.run(m.current.act, values)
		m.state = stateResult
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

func (m menuModel) View() string {
	var b strings.Builder
	switch m.state {
	case stateForm:
		b.WriteString(styleTitle.Render(m.current.title))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("⏎ next field / run  esc cancel"))
		b.WriteString("\n\n")
		for i, in := range m.inputs {
			label := m.current.prompts[i]
			if i == m.focus {
				b.WriteString(styleSelected.Render("▸ " + label + ": "))
			} else {
				b.WriteString(styleNormal.Render("  " + label + ": "))
			}
			b.WriteString(in.View())
			b.WriteString("\n")
		}
	case stateResult:
		b.WriteString(m.result)
		b.WriteString("\n")
		b.WriteString(styleDim.Render("press any key to return"))
		b.WriteString("\n")
	default:
		b.WriteString(styleTitle.Render("Cityatlas"))
		b.WriteString("  ")
		b.WriteString(styleDim.Render(fmt.Sprintf("%d cities, tree height %d", m.reg.Len(), m.reg.Height())))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
		b.WriteString("\n\n")
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(styleSelected.Render("▸ " + item.title))
			} else {
				b.WriteString(styleNormal.Render("  " + item.title))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// run executes a menu action against the registry and formats the outcome,
// including the theoretical complexity line shown after every operation.
func (m *menuModel) run(act menuAction, values []string) string {
	out, op, err := m.execute(act, values)
	if err != nil {
		return styleError.Render(err.Error())
	}
	if op != "" {
		out += "\n" + styleComplexity.Render("complexity ("+op+"): "+registry.Complexity(op))
	}
	return out
}

func (m *menuModel) execute(act menuAction, values []string) (out, op string, err error) {
	switch act {
	case actRegister:
		key, err := parseKey(values[0])
		if err != nil {
			return "", "", err
		}
		city := m.reg.Register(key, strings.TrimSpace(values[1]))
		return styleSuccess.Render(fmt.Sprintf("City %q (ID %d) registered.", city.Name, city.ID)), registry.OpInsert, nil

	case actRemove:
		key, err := parseKey(values[0])
		if err != nil {
			return "", "", err
		}
		if !m.reg.Remove(key) {
			return "", "", apperrors.New(apperrors.ErrCodeNotFound, "city %d not registered", key)
		}
		return styleSuccess.Render(fmt.Sprintf("City ID %d removed.", key)), registry.OpRemove, nil

	case actTraversals:
		return m.traversals(), registry.OpTraversal, nil

	case actAddDistrict:
		city, err := m.findCity(values[0])
		if err != nil {
			return "", "", err
		}
		district := strings.TrimSpace(values[1])
		if err := city.Routes.AddVertex(district); err != nil {
			return "", "", apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "district %q", district)
		}
		return styleSuccess.Render(fmt.Sprintf("District %q added to %s.", district, city.Name)), "", nil

	case actListDistricts:
		city, err := m.findCity(values[0])
		if err != nil {
			return "", "", err
		}
		districts := city.Routes.Vertices()
		if len(districts) == 0 {
			return fmt.Sprintf("%s has no districts yet.", city.Name), "", nil
		}
		return fmt.Sprintf("Districts of %s: %s", city.Name, strings.Join(districts, ", ")), "", nil

	case actAddRoute:
		city, err := m.findCity(values[0])
		if err != nil {
			return "", "", err
		}
		from, to := strings.TrimSpace(values[1]), strings.TrimSpace(values[2])
		weight, err := parseWeight(values[3], m.cfg.Routes.DefaultWeight)
		if err != nil {
			return "", "", err
		}
		// Endpoints are created on demand; AddVertex is idempotent.
		for _, d := range []string{from, to} {
			if err := city.Routes.AddVertex(d); err != nil {
				return "", "", apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "district %q", d)
			}
		}
		if err := city.Routes.AddEdge(from, to, weight); err != nil {
			return "", "", apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "route %s → %s", from, to)
		}
		return styleSuccess.Render(fmt.Sprintf("Route %s → %s (weight %g) added to %s.", from, to, weight, city.Name)), "", nil

	case actBFS, actDFS:
		city, err := m.findCity(values[0])
		if err != nil {
			return "", "", err
		}
		start := strings.TrimSpace(values[1])
		if !city.Routes.HasVertex(start) {
			return "", "", apperrors.New(apperrors.ErrCodeUnknownVertex, "district %q not in %s", start, city.Name)
		}
		var order []string
		op := registry.OpBFS
		if act == actBFS {
			order, err = city.Routes.BFS(start)
		} else {
			order, err = city.Routes.DFS(start)
			op = registry.OpDFS
		}
		if err != nil {
			return "", "", err
		}
		return "Visit order: " + strings.Join(order, " → "), op, nil

	case actShortestPath:
		city, err := m.findCity(values[0])
		if err != nil {
			return "", "", err
		}
		source, target := strings.TrimSpace(values[1]), strings.TrimSpace(values[2])
		for _, d := range []string{source, target} {
			if !city.Routes.HasVertex(d) {
				return "", "", apperrors.New(apperrors.ErrCodeUnknownVertex, "district %q not in %s", d, city.Name)
			}
		}
		dist, path, err := city.Routes.ShortestPath(source, target)
		if err != nil {
			return "", "", err
		}
		if math.IsInf(dist, 1) {
			return fmt.Sprintf("%s is unreachable from %s.", target, source), registry.OpDijkstra, nil
		}
		return fmt.Sprintf("Distance %g via %s", dist, strings.Join(path, " → ")), registry.OpDijkstra, nil

	case actExportDSW:
		if m.reg.Len() == 0 {
			return "", "", apperrors.New(apperrors.ErrCodeEmptyTree, "no cities registered")
		}
		bst := m.reg.ExportBST()
		before := bst.Height()
		bst.Balance()
		return fmt.Sprintf("Exported %d cities.\nAVL height: %d\nBST height before DSW: %d\nBST height after DSW: %d",
			bst.Len(), m.reg.Height(), before, bst.Height()), registry.OpDSWBalance, nil
	}
	return "", "", nil
}

func (m *menuModel) findCity(rawID string) (registry.City, error) {
	key, err := parseKey(rawID)
	if err != nil {
		return registry.City{}, err
	}
	city, ok := m.reg.Find(key)
	if !ok {
		return registry.City{}, apperrors.New(apperrors.ErrCodeNotFound, "city %d not registered", key)
	}
	return city, nil
}

func (m *menuModel) traversals() string {
	var b strings.Builder
	for _, order := range []registry.Order{registry.PreOrder, registry.InOrder, registry.PostOrder} {
		b.WriteString(styleTitle.Render(order.String()))
		b.WriteString("\n")
		for _, city := range m.reg.Cities(order) {
			b.WriteString(fmt.Sprintf("  ID %-4d %-20s h=%d\n", city.ID, city.Name, city.TreeHeight))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
