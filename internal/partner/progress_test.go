package partner

import "testing"

func TestCompletedBlankDraft(t *testing.T) {
	if done := Completed(NewDraft()); len(done) != 0 {
		t.Errorf("blank draft completed = %v, want empty", done)
	}
}

func TestCompletedCountsRequiredOnly(t *testing.T) {
	d := NewDraft()
	d.City = "São Paulo"
	d.Email = "a@b.co"
	d.Complement = "apto 42"
	d.Note = "met at the trade fair"

	done := Completed(d)

	if len(done) != 2 {
		t.Fatalf("completed = %v, want 2 entries", done)
	}
	if !done[FieldCity] || !done[FieldEmail] {
		t.Errorf("completed = %v, want city and email", done)
	}
}

func TestCompletedIgnoresWhitespace(t *testing.T) {
	d := NewDraft()
	d.City = "  "

	if done := Completed(d); len(done) != 0 {
		t.Errorf("completed = %v, want empty", done)
	}
}

func TestProgress(t *testing.T) {
	d := NewDraft()

	if got := Progress(d); got != 0 {
		t.Errorf("blank progress = %v, want 0", got)
	}

	d.City = "São Paulo"
	d.Email = "a@b.co"
	d.Phone = "(11) 3456-7890"
	d.State = "SP"
	d.Street = "Avenida Paulista"

	if got := Progress(d); got != 0.5 {
		t.Errorf("half progress = %v, want 0.5", got)
	}

	if got := Progress(validDraft()); got != 1 {
		t.Errorf("full progress = %v, want 1", got)
	}
}
