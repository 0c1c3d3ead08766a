package workflow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sorawit/coursereg/internal/pkg/validation"
)

func TestIngestRejectsOversizedImagesOnly(t *testing.T) {
	notifier := &fakeNotifier{}
	w := newTestWorkflow(&fakeStore{}, notifier)

	big := bytes.Repeat([]byte{0xAB}, 400*1024)
	small := bytes.Repeat([]byte{0xCD}, 50*1024)

	res, err := w.IngestFiles([]FileUpload{
		{Name: "photo-big.jpg", ContentType: "image/jpeg", Data: big},
		{Name: "photo-small.png", ContentType: "image/png", Data: small},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if res.Accepted != 1 || res.Rejected != 1 {
		t.Fatalf("result = %+v", res)
	}

	s := w.State()
	if len(s.Draft.Attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(s.Draft.Attachments))
	}
	att := s.Draft.Attachments[0]
	if att.Name != "photo-small.png" || att.Size != 50*1024 {
		t.Errorf("kept wrong file: %q (%d bytes)", att.Name, att.Size)
	}
	if !strings.HasPrefix(att.Preview, "data:image/png;base64,") {
		t.Errorf("image preview missing, got %q", att.Preview[:min(len(att.Preview), 40)])
	}

	// The oversized image surfaced as a single notification with the
	// file name and the cap in kilobytes.
	if notifier.count(NotifyError) != 1 {
		t.Fatalf("rejection notifications = %d", notifier.count(NotifyError))
	}
	msg := notifier.notices[0].message
	if !strings.Contains(msg, "photo-big.jpg") || !strings.Contains(msg, "300KB") {
		t.Errorf("rejection message %q", msg)
	}
	if s.ValidationError != "" {
		t.Errorf("validation error %q after a partially accepted batch", s.ValidationError)
	}
}

func TestIngestOversizedNonImageAccepted(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	data := bytes.Repeat([]byte{0x01}, validation.MaxImageAttachmentSize+1)
	res, err := w.IngestFiles([]FileUpload{{Name: "transcript.pdf", ContentType: "application/pdf", Data: data}})
	if err != nil || res.Accepted != 1 || res.Rejected != 0 {
		t.Fatalf("result = %+v err = %v", res, err)
	}

	att := w.State().Draft.Attachments[0]
	if att.Preview != "" {
		t.Error("non-image got an inline preview")
	}
}

func TestIngestImageAtExactCapAccepted(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	data := bytes.Repeat([]byte{0x02}, validation.MaxImageAttachmentSize)
	res, err := w.IngestFiles([]FileUpload{{Name: "edge.png", ContentType: "image/png", Data: data}})
	if err != nil || res.Accepted != 1 {
		t.Fatalf("result = %+v err = %v", res, err)
	}
}

func TestIngestAllRejectedSetsDistinctError(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	big := bytes.Repeat([]byte{0x03}, validation.MaxImageAttachmentSize+1)
	res, err := w.IngestFiles([]FileUpload{{Name: "a.jpg", ContentType: "image/jpeg", Data: big}})
	if err != nil || res.Accepted != 0 || res.Rejected != 1 {
		t.Fatalf("result = %+v err = %v", res, err)
	}
	if s := w.State(); s.ValidationError != "เอกสารแนบทั้งหมดถูกปฏิเสธ กรุณาเลือกไฟล์ใหม่" {
		t.Errorf("validation error %q", s.ValidationError)
	}

	// Advance off the documents step must report the same all-rejected
	// wording instead of the generic missing-documents one.
	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	w.Advance()
	if s := w.State(); s.ValidationError != "เอกสารแนบทั้งหมดถูกปฏิเสธ กรุณาเลือกไฟล์ใหม่" {
		t.Errorf("advance error %q", s.ValidationError)
	}
}

func TestIngestReplacesPreviousSelection(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	w.IngestFiles([]FileUpload{
		{Name: "one.pdf", ContentType: "application/pdf", Data: []byte("1")},
		{Name: "two.pdf", ContentType: "application/pdf", Data: []byte("2")},
	})
	w.IngestFiles([]FileUpload{{Name: "three.pdf", ContentType: "application/pdf", Data: []byte("3")}})

	atts := w.State().Draft.Attachments
	if len(atts) != 1 || atts[0].Name != "three.pdf" {
		t.Fatalf("attachments = %+v, want just three.pdf", atts)
	}
}

func TestIngestEmptySelectionClearsAttachments(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	w.IngestFiles([]FileUpload{{Name: "one.pdf", ContentType: "application/pdf", Data: []byte("1")}})
	res, err := w.IngestFiles(nil)
	if err != nil || res.Accepted != 0 || res.Rejected != 0 {
		t.Fatalf("result = %+v err = %v", res, err)
	}
	s := w.State()
	if len(s.Draft.Attachments) != 0 {
		t.Error("attachments survived an empty re-selection")
	}
	if s.ValidationError != "กรุณาแนบเอกสารที่จำเป็น" {
		t.Errorf("validation error %q", s.ValidationError)
	}
}

func TestIngestRefusedAfterClose(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})
	w.Close()
	if _, err := w.IngestFiles([]FileUpload{{Name: "x.pdf", ContentType: "application/pdf", Data: []byte("x")}}); err == nil {
		t.Fatal("ingest allowed on a closed workflow")
	}
}
