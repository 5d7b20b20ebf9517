package game

import "testing"

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.ID == "" {
		t.Error("session has no ID")
	}
	if s.Phase != PhasePregame || s.ReactionMS != 0 || s.FastestMS != NoFastest || s.HasFastest() {
		t.Errorf("new session = %+v", s)
	}
}

func TestRecordReactionOnlyLowersFastest(t *testing.T) {
	s := NewSession()
	steps := []struct {
		ms       uint32
		improved bool
		fastest  uint32
	}{
		{450, true, 450},
		{300, true, 300},
		{600, false, 300},
		{300, false, 300},
		{0, true, 0},
	}
	for _, st := range steps {
		if got := s.RecordReaction(st.ms); got != st.improved {
			t.Errorf("RecordReaction(%d) improved = %v, want %v", st.ms, got, st.improved)
		}
		if s.ReactionMS != st.ms || s.FastestMS != st.fastest {
			t.Errorf("after %d: reaction=%d fastest=%d, want %d/%d", st.ms, s.ReactionMS, s.FastestMS, st.ms, st.fastest)
		}
	}
}

func TestRecordReactionNeverStoresSentinel(t *testing.T) {
	s := NewSession()
	s.RecordReaction(NoFastest)
	if !s.HasFastest() {
		t.Fatal("a completed run left the sentinel in place")
	}
	if s.FastestMS != NoFastest-1 || s.ReactionMS != NoFastest-1 {
		t.Errorf("clamped to %d/%d, want %d", s.ReactionMS, s.FastestMS, NoFastest-1)
	}
}

func TestSessionResetKeepsIdentity(t *testing.T) {
	s := NewSession()
	id := s.ID
	s.NewRound()
	s.Phase = PhaseResult
	s.RecordReaction(250)

	s.Reset()
	if s.ID != id {
		t.Errorf("Reset changed session ID %q -> %q", id, s.ID)
	}
	if s.Round != "" || s.Phase != PhasePregame || s.ReactionMS != 0 || s.FastestMS != NoFastest {
		t.Errorf("reset session = %+v", s)
	}
}
