// Package bubbletea provides a terminal UI viewer for scripts using the
// Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rfandrade/roteiro"
)

// adaptDoneMsg is emitted when a background adaptation batch settles.
type adaptDoneMsg struct {
	batch *roteiro.BatchResult
	err   error
}

// ScriptModel displays a parsed script with scores, tone direction and
// adaptation controls.
type ScriptModel struct {
	doc        roteiro.Document
	validation *roteiro.ValidationResult
	session    *roteiro.AdaptationSession
	wordDiffer roteiro.WordDiffer
	clipboard  roteiro.Clipboard

	ctx        context.Context
	viewport   viewport.Model
	keymap     KeyMap
	styles     roteiro.Styles
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
	status     string
}

// ScriptModelOption configures a ScriptModel.
type ScriptModelOption func(*scriptModelConfig)

type scriptModelConfig struct {
	renderer   *lipgloss.Renderer
	theme      roteiro.Theme
	validation *roteiro.ValidationResult
	session    *roteiro.AdaptationSession
	wordDiffer roteiro.WordDiffer
	clipboard  roteiro.Clipboard
	ctx        context.Context
}

// WithScriptRenderer sets a custom lipgloss renderer for the model.
func WithScriptRenderer(r *lipgloss.Renderer) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.renderer = r
	}
}

// WithScriptTheme sets the theme for the model.
func WithScriptTheme(t roteiro.Theme) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.theme = t
	}
}

// WithScriptValidation attaches quality scores, enabling the scorecard and
// per-stage badges.
func WithScriptValidation(v *roteiro.ValidationResult) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.validation = v
	}
}

// WithScriptSession attaches an adaptation session, enabling the adapt and
// comparison keys.
func WithScriptSession(s *roteiro.AdaptationSession) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.session = s
	}
}

// WithScriptWordDiffer sets the word differ for comparison highlighting.
func WithScriptWordDiffer(d roteiro.WordDiffer) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.wordDiffer = d
	}
}

// WithScriptClipboard sets the clipboard used by the yank key.
func WithScriptClipboard(c roteiro.Clipboard) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.clipboard = c
	}
}

// WithScriptContext sets the context passed to adaptation calls.
func WithScriptContext(ctx context.Context) ScriptModelOption {
	return func(cfg *scriptModelConfig) {
		cfg.ctx = ctx
	}
}

// NewScriptModel creates a new ScriptModel for the given document.
func NewScriptModel(doc roteiro.Document, opts ...ScriptModelOption) ScriptModel {
	cfg := &scriptModelConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}

	var styles roteiro.Styles
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	}

	return ScriptModel{
		doc:        doc,
		validation: cfg.validation,
		session:    cfg.session,
		wordDiffer: cfg.wordDiffer,
		clipboard:  cfg.clipboard,
		ctx:        cfg.ctx,
		keymap:     DefaultKeyMap(),
		styles:     styles,
		renderer:   cfg.renderer,
	}
}

// Init implements tea.Model.
func (m ScriptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScriptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.Adapt):
			return m.startAdaptation()
		case key.Matches(msg, m.keymap.ToggleComparison):
			if m.session != nil {
				m.session.ToggleComparison()
				m.refreshContent()
			}
			return m, nil
		case key.Matches(msg, m.keymap.Yank):
			m.yank()
			return m, nil
		}

	case adaptDoneMsg:
		m.status = adaptStatus(msg)
		m.refreshContent()
		return m, nil

	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.viewport.SetContent(m.renderContent())
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScriptModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// startAdaptation kicks off an adaptation batch in the background. A busy
// session rejects immediately and the rejection lands in the status bar.
func (m ScriptModel) startAdaptation() (tea.Model, tea.Cmd) {
	if m.session == nil || m.validation == nil {
		m.status = "sem avaliação para adaptar"
		return m, nil
	}

	session := m.session
	ctx := m.ctx
	doc := m.doc
	validation := *m.validation
	m.status = "adaptando blocos fracos..."

	return m, func() tea.Msg {
		batch, err := session.Adapt(ctx, doc, validation)
		return adaptDoneMsg{batch: batch, err: err}
	}
}

// yank copies the script, with adapted blocks substituted, to the clipboard.
func (m *ScriptModel) yank() {
	if m.clipboard == nil {
		m.status = "clipboard indisponível"
		return
	}
	if err := m.clipboard.Copy(exportText(m.doc, m.session)); err != nil {
		m.status = fmt.Sprintf("falha ao copiar: %v", err)
		return
	}
	m.status = "roteiro copiado"
}

func (m *ScriptModel) refreshContent() {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

// renderContent renders the script with the current session state.
func (m ScriptModel) renderContent() string {
	return renderScript(renderConfig{
		doc:        m.doc,
		validation: m.validation,
		session:    m.session,
		styles:     m.styles,
		renderer:   m.renderer,
		width:      m.width,
		wordDiffer: m.wordDiffer,
	})
}

// statusBarView renders the bottom status bar with the title and key hints.
func (m ScriptModel) statusBarView() string {
	title := m.doc.Meta.Title
	hints := "a adaptar · c comparar · y copiar · q sair"
	if m.status != "" {
		hints = m.status
	}
	bar := fmt.Sprintf(" %s — %s", title, hints)
	return styleFromColorPair(m.styles.Metadata, m.renderer).Render(bar)
}

// adaptStatus summarizes a settled batch for the status bar.
func adaptStatus(msg adaptDoneMsg) string {
	if msg.err != nil {
		if errors.Is(msg.err, roteiro.ErrBusy) {
			return "adaptação já em andamento"
		}
		return fmt.Sprintf("falha na adaptação: %v", msg.err)
	}
	if msg.batch == nil {
		return ""
	}
	if len(msg.batch.Requested) == 0 {
		return "nenhum bloco abaixo do corte de adaptação"
	}
	if msg.batch.Complete() {
		return fmt.Sprintf("%d bloco(s) adaptado(s)", len(msg.batch.Requested))
	}
	return fmt.Sprintf("%d de %d bloco(s) adaptado(s)",
		len(msg.batch.Requested)-len(msg.batch.Failed), len(msg.batch.Requested))
}

// Viewer implements roteiro.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ScriptModelOption
}

// NewViewer creates a new Viewer. The options are applied to every model
// it creates.
func NewViewer(opts ...ScriptModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// Compile-time interface verification.
var _ roteiro.Viewer = (*Viewer)(nil)

// View displays the script and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, doc roteiro.Document) error {
	opts := append([]ScriptModelOption{WithScriptContext(ctx)}, v.opts...)
	m := NewScriptModel(doc, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
