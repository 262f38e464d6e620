package migration

import "testing"

func TestHistory_AppendAndDumpPreservesOrder(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Append(1, 0, 1)
	h.Append(2, 1, 2)

	items := h.Dump()
	if len(items) != 2 {
		t.Fatalf("Dump() returned %d items, want 2", len(items))
	}
	if items[0] != (HistoryItem{Count: 1, Origin: 0, Destination: 1}) {
		t.Fatalf("items[0] = %+v", items[0])
	}
	if items[1] != (HistoryItem{Count: 2, Origin: 1, Destination: 2}) {
		t.Fatalf("items[1] = %+v", items[1])
	}
}

func TestHistory_Clear(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Append(1, 0, 1)
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", h.Len())
	}
}

func TestHistory_DumpReturnsACopy(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Append(1, 0, 1)
	dump := h.Dump()
	dump[0].Count = 999
	if h.Dump()[0].Count == 999 {
		t.Fatal("Dump must return an independent copy")
	}
}
