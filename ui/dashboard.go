// Package ui draws a live terminal dashboard of the tracked fleet and
// the deframer's running counters, redrawn on every decoded message.
package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/jroimartin/gocui"
	. "github.com/logrusorgru/aurora"

	"goais/ais"
	"goais/fleet"
	"goais/hdlc"
)

// Dashboard owns the gocui runtime and the state it renders. Only the
// goroutine running MainLoop touches the gocui views directly; every
// other goroutine must go through Update, which gocui itself
// serializes via g.Update.
type Dashboard struct {
	gui      *gocui.Gui
	registry *fleet.Registry
	deframer *hdlc.Deframer
	lastText string
	lastOK   bool
}

// NewDashboard builds the gocui runtime around registry and deframer,
// mirroring the teacher's own status+list two-pane layout.
func NewDashboard(registry *fleet.Registry, deframer *hdlc.Deframer) (*Dashboard, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}

	d := &Dashboard{gui: g, registry: registry, deframer: deframer}
	g.SetManagerFunc(d.layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, fmt.Errorf("ui: %w", err)
	}
	return d, nil
}

func (d *Dashboard) Close() { d.gui.Close() }

// NoteFrame records the most recently validated (or CRC-failed, under
// debug verbosity) sentence for the text pane.
func (d *Dashboard) NoteFrame(text string, crcOK bool) {
	d.lastText, d.lastOK = text, crcOK
	d.gui.Update(d.render)
}

// Refresh schedules a redraw without a new frame, used by the periodic
// ticker that ages out stale fleet rows.
func (d *Dashboard) Refresh() {
	d.gui.Update(d.render)
}

// Run blocks running the gocui main loop until quit (Ctrl-C) or a
// fatal UI error.
func (d *Dashboard) Run() error {
	defer d.gui.Close()
	if err := d.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (d *Dashboard) layout(g *gocui.Gui) error {
	const maxX = 100
	_, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-2, 2); err == nil || err == gocui.ErrUnknownView {
		v.Title = " STATUS "
		fmt.Fprintln(v, " VESSELS: --  FOUND: --  START-LOST: --  STOP-LOST: --")
	}

	if v, err := g.SetView("list", 0, 3, maxX-2, maxY-6); err == nil || err == gocui.ErrUnknownView {
		v.Title = " FLEET "
	}

	if v, err := g.SetView("frame", 0, maxY-5, maxX-2, maxY-1); err == nil || err == gocui.ErrUnknownView {
		v.Title = " LAST SENTENCE "
	}

	return nil
}

func (d *Dashboard) render(g *gocui.Gui) error {
	s, err := g.View("status")
	if err != nil {
		return nil
	}
	s.Clear()
	fmt.Fprintf(s, " VESSELS: %s  FOUND: %d  START-LOST: %d  STOP-LOST: %d  %s\n",
		Green(d.registry.Count()),
		d.deframer.NumFound, d.deframer.NumStartLost, d.deframer.NumStopLost,
		Bold(Green(time.Now().Format("2006-01-02 15:04:05"))))

	l, err := g.View("list")
	if err != nil {
		return nil
	}
	l.Clear()
	fmt.Fprintln(l, " MMSI        NAME                  TYPE           SPEED  COURSE     LAT      LON  SEEN")
	fmt.Fprintln(l, " =================================================================================")

	snap := d.registry.Snapshot()
	sort.Slice(snap, func(i, j int) bool {
		return time.Since(snap[i].LastSeen) < time.Since(snap[j].LastSeen)
	})

	for _, v := range snap {
		row := fmt.Sprintf(" %-10d  %-20.20s  %-13.13s  %5s  %6s  %7s  %7s  %s",
			v.MMSI, v.Name, v.ShipType,
			formatSpeed(v.Speed), formatCourse(v.Course),
			formatCoord(v.Position, true), formatCoord(v.Position, false),
			v.LastSeen.Format("15:04:05"))

		if time.Since(v.LastSeen) > 2*time.Minute {
			fmt.Fprintln(l, Sprintf(Faint(row)))
		} else {
			fmt.Fprintln(l, Sprintf(Yellow(row)))
		}
	}

	f, err := g.View("frame")
	if err != nil {
		return nil
	}
	f.Clear()
	if d.lastOK {
		fmt.Fprintln(f, Sprintf(Green(d.lastText)))
	} else {
		fmt.Fprintln(f, Sprintf(Red(d.lastText)))
	}

	return nil
}

func formatSpeed(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatCourse(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatCoord(p *ais.Point, lon bool) string {
	if p == nil {
		return "--"
	}
	if lon {
		return fmt.Sprintf("%.3f", p.Lon)
	}
	return fmt.Sprintf("%.3f", p.Lat)
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
