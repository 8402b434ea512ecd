package render

import "github.com/lixenwraith/phrase-drift/assembler"

// Renderer draws the assembler state onto a screen and serves as its Projector
type Renderer struct {
	screen Screen
	orch   *Orchestrator
	proj   *Projection
	hud    *HUDLayer
}

// NewRenderer registers the standard layers for a cube of boxSize
func NewRenderer(screen Screen, boxSize float64, showHUD bool) *Renderer {
	w, h := screen.Size()
	r := &Renderer{
		screen: screen,
		orch:   NewOrchestrator(screen),
		proj:   NewProjection(boxSize, w, h),
		hud:    &HUDLayer{Visible: showHUD},
	}

	r.orch.Register(BoxLayer{}, PriorityBox)
	r.orch.Register(PathLayer{}, PriorityPaths)
	r.orch.Register(CenterZoneLayer{}, PriorityCenterZone)
	r.orch.Register(WordLayer{}, PriorityWords)
	r.orch.Register(CollectorLayer{}, PriorityCollector)
	r.orch.Register(PhraseLayer{}, PriorityPhrase)
	r.orch.Register(r.hud, PriorityUI)
	return r
}

// Projection returns the projector shared with the assembler
func (r *Renderer) Projection() *Projection {
	return r.proj
}

// Resize refreshes the projection from the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.proj.SetSize(w, h)
}

func (r *Renderer) SetHUD(visible bool) { r.hud.Visible = visible }

// ToggleHUD flips HUD visibility and returns the new state
func (r *Renderer) ToggleHUD() bool {
	r.hud.Visible = !r.hud.Visible
	return r.hud.Visible
}

// Draw renders one frame
func (r *Renderer) Draw(a *assembler.Assembler, status Status) {
	r.orch.RenderFrame(Context{
		Assembler:  a,
		Projection: r.proj,
		Status:     status,
	})
}
