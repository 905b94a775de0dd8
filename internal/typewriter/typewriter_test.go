package typewriter

import (
	"testing"
	"time"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestTimeline(t *testing.T) {
	tw := New([]string{"ab", "c"}, DefaultConfig())
	tw.Start(0)

	steps := []struct {
		at    time.Duration
		text  string
		phase Phase
	}{
		{ms(999), "", PhaseWaiting},
		{ms(1000), "a", PhaseTyping},
		{ms(1100), "ab", PhaseTyping},
		{ms(1200), "ab", PhaseHolding},
		{ms(4199), "ab", PhaseHolding},
		{ms(4200), "a", PhaseDeleting},
		{ms(4250), "", PhaseDeleting},
		{ms(4300), "", PhasePausing},
		{ms(4800), "c", PhaseTyping},
		{ms(4900), "c", PhaseHolding},
		{ms(7900), "", PhaseDeleting},
		{ms(7950), "", PhasePausing},
		{ms(10449), "", PhasePausing},
		{ms(10450), "a", PhaseTyping},
	}

	for _, s := range steps {
		tw.Advance(s.at)
		if tw.Text() != s.text || tw.Phase() != s.phase {
			t.Errorf("at %v: expected %q (%s), got %q (%s)", s.at, s.text, s.phase, tw.Text(), tw.Phase())
		}
	}
	if tw.Index() != 0 {
		t.Errorf("expected loop back to phrase 0, got %d", tw.Index())
	}
}

func TestCatchUpIsFrameRateIndependent(t *testing.T) {
	fine := New(DefaultPhrases, DefaultConfig())
	coarse := New(DefaultPhrases, DefaultConfig())
	fine.Start(0)
	coarse.Start(0)

	for now := time.Duration(0); now <= 20*time.Second; now += ms(16) {
		fine.Advance(now)
	}
	coarse.Advance(20*time.Second - 20*time.Second%ms(16))

	if fine.Text() != coarse.Text() || fine.Index() != coarse.Index() {
		t.Errorf("expected %q at %d, got %q at %d", fine.Text(), fine.Index(), coarse.Text(), coarse.Index())
	}
}

func TestGraphemeClusters(t *testing.T) {
	// "ế" written as e + combining circumflex + combining acute.
	phrase := "Tie\u0302\u0301ng"
	tw := New([]string{phrase}, DefaultConfig())
	tw.Start(0)

	tw.Advance(ms(1000 + 2*100))
	if got := tw.Text(); got != "Tie\u0302\u0301" {
		t.Errorf("expected the whole cluster, got %q", got)
	}
	if tw.Width() != 3 {
		t.Errorf("expected width 3, got %d", tw.Width())
	}
}

func TestChangedReport(t *testing.T) {
	tw := New([]string{"x"}, DefaultConfig())
	if tw.Advance(ms(5000)) {
		t.Error("advance before start should do nothing")
	}
	tw.Start(0)
	if !tw.Advance(ms(1000)) {
		t.Error("expected change when the first cluster appears")
	}
	if tw.Advance(ms(1050)) {
		t.Error("expected no change between steps")
	}
}

func TestNoPhrases(t *testing.T) {
	tw := New(nil, Config{})
	tw.Start(0)
	if tw.Advance(time.Hour) || tw.Text() != "" {
		t.Error("empty typewriter should stay blank")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseDeleting.String() != "deleting" || Phase(99).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
