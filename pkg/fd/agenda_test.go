package fd

import "testing"

func TestAgendaScheduleDedupes(t *testing.T) {
	ag := newAgenda(4)
	ag.schedule(1)
	ag.schedule(1)
	ag.schedule(2)

	var popped []PropId
	for {
		p, ok := ag.pop()
		if !ok {
			break
		}
		popped = append(popped, p)
	}
	if len(popped) != 2 {
		t.Fatalf("popped = %v; want exactly [1, 2]", popped)
	}
	if popped[0] != 1 || popped[1] != 2 {
		t.Fatalf("popped = %v; want FIFO order [1, 2]", popped)
	}
}

func TestAgendaRescheduleAfterPop(t *testing.T) {
	ag := newAgenda(2)
	ag.schedule(0)
	if _, ok := ag.pop(); !ok {
		t.Fatal("pop() found nothing")
	}
	ag.schedule(0)
	if _, ok := ag.pop(); !ok {
		t.Fatal("a propagator popped once must be schedulable again")
	}
}
