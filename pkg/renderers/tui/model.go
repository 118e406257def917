package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/format"
	"github.com/goliatone/go-formatter/pkg/render"
)

type stage uint8

const (
	stagePick stage = iota
	stageEdit
	stageDone
)

// Model is the bubbletea model behind the renderer. It can be driven directly
// through Update, which is how the tests exercise it.
type Model struct {
	ctx     context.Context
	session render.Session
	styles  Styles

	stage  stage
	cursor int
	name   string

	f    *format.Formatter
	host *field.Memory
	att  *format.Attachment

	entries []render.Entry
	status  string
	err     error
}

var _ tea.Model = (*Model)(nil)

// NewModel prepares a model for session. When the session names a formatter
// the model starts editing it straight away; otherwise it starts with a
// picker.
func NewModel(ctx context.Context, session render.Session, styles Styles) (*Model, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	m := &Model{ctx: ctx, session: session, styles: styles}
	if session.Name != "" {
		if err := m.open(session.Name); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.stage == stageDone {
		return m, nil
	}
	if err := m.ctx.Err(); err != nil {
		return m.fail(err)
	}
	if m.stage == stagePick {
		return m.updatePicker(key)
	}

	t := translate(key)
	switch t.action {
	case actionAbort:
		return m.fail(ErrAborted)
	case actionFinish:
		m.finish()
		return m, tea.Quit
	case actionSubmit:
		if err := m.submit(); err != nil {
			return m.fail(err)
		}
		if m.session.Once {
			m.finish()
			return m, tea.Quit
		}
		if err := m.reset(); err != nil {
			return m.fail(err)
		}
		return m, nil
	case actionPaste:
		m.host.Paste(t.paste)
	case actionEdit:
		m.host.Keys(t.events...)
	default:
		return m, nil
	}
	if err := m.settle(); err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m *Model) updatePicker(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.fail(ErrAborted)
	case tea.KeyUp, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(m.session.Names)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if err := m.open(m.session.Names[m.cursor]); err != nil {
			return m.fail(err)
		}
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.session.Names)-1 {
				m.cursor++
			}
		case "q":
			return m.fail(ErrAborted)
		}
	}
	return m, nil
}

func (m *Model) open(name string) error {
	f, err := m.session.Formatter(m.ctx, name)
	if err != nil {
		return err
	}
	m.name = name
	m.f = f
	m.stage = stageEdit
	return m.reset()
}

// reset attaches the formatter to a fresh focused field.
func (m *Model) reset() error {
	if m.att != nil {
		m.att.Detach()
	}
	m.host = field.NewMemory()
	att, err := m.f.Attach(m.host)
	if err != nil {
		return fmt.Errorf("tui: attach: %w", err)
	}
	m.att = att
	m.host.Focus()
	return m.settle()
}

func (m *Model) settle() error {
	if _, err := m.host.Loop().Settle(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) submit() error {
	raw := m.host.Text()
	m.host.Blur()
	if err := m.settle(); err != nil {
		return err
	}
	text := m.host.Text()
	entry := render.Entry{
		Name:        m.name,
		Raw:         raw,
		Text:        text,
		Unformatted: m.att.UnformattedValue(),
		Complete:    text != "",
	}
	m.entries = append(m.entries, entry)
	if entry.Complete {
		m.status = fmt.Sprintf("saved %q", entry.Text)
	} else {
		m.status = "value cleared"
	}
	return nil
}

func (m *Model) finish() {
	if m.att != nil {
		m.att.Detach()
	}
	m.stage = stageDone
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.finish()
	return m, tea.Quit
}

// Entries returns the committed values.
func (m *Model) Entries() []render.Entry {
	return append([]render.Entry(nil), m.entries...)
}

// Err returns the error that ended the run, if any.
func (m *Model) Err() error {
	return m.err
}

// Done reports whether the model has finished.
func (m *Model) Done() bool {
	return m.stage == stageDone
}

// Text returns the field text. It is empty before a formatter is picked.
func (m *Model) Text() string {
	if m.host == nil {
		return ""
	}
	return m.host.Text()
}

// Selection returns the field selection.
func (m *Model) Selection() field.Selection {
	if m.host == nil {
		return field.Selection{}
	}
	return m.host.Selection()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	switch m.stage {
	case stagePick:
		b.WriteString(m.styles.Title.Render("Pick a formatter"))
		b.WriteString("\n\n")
		for i, name := range m.session.Names {
			if i == m.cursor {
				b.WriteString(m.styles.Cursor.Render("> " + name))
			} else {
				b.WriteString(m.styles.Item.Render("  " + name))
			}
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("up/down to move, enter to pick, esc to quit"))
	case stageEdit:
		title := m.name
		if m.f.Mode() == format.ModeMask {
			title += "  " + m.f.Template().Source()
		}
		b.WriteString(m.styles.Title.Render(title))
		b.WriteString("\n")
		b.WriteString(m.styles.Field.Render(m.renderField()))
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.styles.Hint.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(m.renderEntries())
		b.WriteString(m.styles.Hint.Render("enter to commit, esc to finish, ctrl+c to abort"))
	case stageDone:
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(m.err.Error()))
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *Model) renderField() string {
	text := []rune(m.host.Text())
	sel := m.host.Selection()
	placeholder, masked := rune(0), m.f.Mode() == format.ModeMask
	if masked {
		placeholder = m.f.Template().Placeholder()
	}

	var b strings.Builder
	for i, r := range text {
		s := string(r)
		switch {
		case sel.Empty() && i == sel.Start:
			b.WriteString(m.styles.Caret.Render(s))
		case i >= sel.Start && i < sel.End:
			b.WriteString(m.styles.Selection.Render(s))
		case masked && r == placeholder && m.f.Template().Editable(i):
			b.WriteString(m.styles.Placeholder.Render(s))
		default:
			b.WriteString(m.styles.Text.Render(s))
		}
	}
	if sel.Empty() && sel.Start >= len(text) {
		b.WriteString(m.styles.Caret.Render(" "))
	}
	return b.String()
}

func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range m.entries {
		style := m.styles.Complete
		if !e.Complete {
			style = m.styles.Partial
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s: %q", e.Name, e.Text)))
		b.WriteByte('\n')
	}
	return b.String()
}
