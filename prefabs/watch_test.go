package prefabs

import (
	"errors"
	"testing"
)

func TestWatcherPoll(t *testing.T) {
	w := &Watcher{Events: make(chan Change, 2), Errors: make(chan error, 1)}

	changes, errs, open := w.Poll()
	if !open || len(changes) != 0 || len(errs) != 0 {
		t.Fatalf("idle poll = %v, %v, %v", changes, errs, open)
	}

	w.Events <- Change{Path: "prefabs/weapons.yaml", Kind: ChangeWeapons}
	w.Errors <- errors.New("boom")
	changes, errs, open = w.Poll()
	if !open {
		t.Fatalf("watcher reported closed while channels are open")
	}
	if len(changes) != 1 || changes[0].Kind != ChangeWeapons {
		t.Fatalf("changes = %v, want one weapons change", changes)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want one error", errs)
	}

	w.Events <- Change{Path: "prefabs/scripts/target.tengo", Kind: ChangeScript}
	close(w.Events)
	close(w.Errors)
	changes, errs, open = w.Poll()
	if open {
		t.Fatalf("closed watcher still reported open")
	}
	if len(changes) != 1 || changes[0].Kind != ChangeScript {
		t.Fatalf("pending change lost on close: %v", changes)
	}
	for _, err := range errs {
		if err == nil {
			t.Fatalf("closed error channel yielded a nil error")
		}
	}
}
