// Command goais reads a recorded VHF capture, equalizes it, deframes
// and CRC-validates HDLC frames into NMEA !AIVDM sentences, decodes
// the AIS payload, and renders a live fleet dashboard — the three
// graded pipeline stages (equalizer, hdlc, ais) wired together by the
// glue packages (capture, correlator, fleet, ui) around them.
package main

import (
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"

	"goais/ais"
	"goais/capture"
	"goais/config"
	"goais/correlator"
	"goais/equalizer"
	"goais/fleet"
	"goais/hdlc"
	"goais/tags"
	"goais/ui"
	"goais/verbosity"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := charmlog.New(os.Stderr)
	logger.SetLevel(levelFor(cfg.Verbose))

	batches, stop, err := capture.Start(cfg.CapturePath)
	if err != nil {
		logger.Error("capture open failed", "err", err)
		os.Exit(1)
	}
	defer stop()

	dfe := equalizer.NewDFE(cfg.LambdaFF, cfg.LambdaFB, cfg.FFTaps, cfg.FBTaps)
	deframer := hdlc.NewDeframer(cfg.Designator, byte(cfg.Verbose))
	decoder := ais.NewDecoder(cfg.Designator, verbosity.FromLevel(cfg.Verbose), ais.Point{Lon: cfg.ObserverLon, Lat: cfg.ObserverLat})
	registry := fleet.NewRegistry(fleet.DefaultTTL)

	var dash *ui.Dashboard
	if cfg.Dashboard {
		dash, err = ui.NewDashboard(registry, deframer)
		if err != nil {
			logger.Error("dashboard init failed", "err", err)
			os.Exit(1)
		}
		go runDashboard(dash, logger)
	}

	run(batches, dfe, deframer, decoder, registry, dash, logger)
}

func runDashboard(dash *ui.Dashboard, logger *charmlog.Logger) {
	if err := dash.Run(); err != nil {
		logger.Error("dashboard exited", "err", err)
	}
}

// run drives the three-stage pipeline: every stage's partial-consume
// backpressure contract is honored by carrying the unconsumed tail of
// each buffer forward into the next iteration, rather than by the
// stage itself retrying internally.
func run(
	batches <-chan capture.Batch,
	dfe *equalizer.DFE,
	deframer *hdlc.Deframer,
	decoder *ais.Decoder,
	registry *fleet.Registry,
	dash *ui.Dashboard,
	logger *charmlog.Logger,
) {
	var pendingSamples []float64
	var pendingFlags []byte
	var streamOffset uint64

	var pendingWindow tags.Window

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case batch, ok := <-batches:
			if !ok {
				logger.Info("capture exhausted", "found", deframer.NumFound)
				return
			}
			pendingSamples = append(pendingSamples, batch.Samples...)
			pendingFlags = append(pendingFlags, batch.Flags...)

			equalized, consumed := dfe.Process(pendingSamples, pendingFlags)
			preambles := correlator.PreambleOffsets(streamOffset, pendingFlags[:consumed])
			window := correlator.Tag(streamOffset, equalized, preambles)
			streamOffset += uint64(consumed)
			pendingSamples = append([]float64{}, pendingSamples[consumed:]...)
			pendingFlags = append([]byte{}, pendingFlags[consumed:]...)

			pendingWindow = mergeWindow(pendingWindow, window)
			pendingWindow = processFrames(pendingWindow, deframer, decoder, registry, dash, logger)

		case <-ticker.C:
			if dash != nil {
				dash.Refresh()
			}
		}
	}
}

// mergeWindow concatenates a newly-tagged window onto whatever bits
// the deframer hasn't yet consumed from a prior call. The carried tags
// need no re-basing, since tags carry absolute stream offsets
// throughout.
func mergeWindow(carry, fresh tags.Window) tags.Window {
	if len(carry.Bits) == 0 {
		return fresh
	}
	return tags.Window{
		Base: carry.Base,
		Bits: append(carry.Bits, fresh.Bits...),
		Tags: append(carry.Tags, fresh.Tags...),
	}
}

func processFrames(w tags.Window, deframer *hdlc.Deframer, decoder *ais.Decoder, registry *fleet.Registry, dash *ui.Dashboard, logger *charmlog.Logger) tags.Window {
	frames, consumed := deframer.Process(w)
	for _, f := range frames {
		if dash != nil {
			dash.NoteFrame(f.Sentence, f.CRCOK)
		}
		if !f.CRCOK {
			continue
		}
		msg, err := decoder.Decode(hdlc.Unarmor(f.Armored))
		if err != nil {
			logger.Debug("decode failed", "err", err)
			continue
		}
		registry.Update(msg)
		logger.Info("frame decoded", "mmsi", msg.MMSI, "type", msg.Type)
	}

	if consumed > 0 {
		w.Bits = w.Bits[consumed:]
		newTags := make([]tags.Tag, 0, len(w.Tags))
		newBase := w.Base + uint64(consumed)
		for _, t := range w.Tags {
			if t.Offset >= newBase {
				newTags = append(newTags, t)
			}
		}
		w.Base = newBase
		w.Tags = newTags
	}

	return w
}

func levelFor(verbose int) charmlog.Level {
	switch {
	case verbose >= 5:
		return charmlog.DebugLevel
	case verbose >= 2:
		return charmlog.InfoLevel
	case verbose >= 1:
		return charmlog.WarnLevel
	default:
		return charmlog.InfoLevel
	}
}
