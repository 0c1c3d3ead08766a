package workflow

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/sorawit/coursereg/internal/pkg/apperrors"
	"github.com/sorawit/coursereg/internal/pkg/validation"
)

// FileUpload is one file selected by the applicant, before ingestion.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	Accepted int
	Rejected int
}

// IngestFiles screens the selected files and replaces the draft's accepted
// attachment set. Images over the size cap are rejected one by one with a
// notification and never abort the rest of the batch. Every file is
// converted concurrently; the call returns only when all conversions have
// settled. Re-selecting files replaces, never appends.
func (w *Workflow) IngestFiles(files []FileUpload) (IngestResult, error) {
	w.mu.Lock()
	if w.phase != PhaseCollecting {
		w.mu.Unlock()
		return IngestResult{}, apperrors.ErrSessionClosed
	}
	w.mu.Unlock()

	type slot struct {
		attachment Attachment
		rejected   string // rejection message, empty when accepted
	}
	slots := make([]slot, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f FileUpload) {
			defer wg.Done()
			if isImage(f.ContentType) && len(f.Data) > validation.MaxImageAttachmentSize {
				slots[i].rejected = fmt.Sprintf("ไฟล์ \"%s\" มีขนาดเกิน %dKB", f.Name, validation.MaxImageAttachmentSize/1024)
				return
			}
			att := Attachment{
				Name:        f.Name,
				ContentType: f.ContentType,
				Size:        len(f.Data),
				Data:        f.Data,
			}
			if isImage(f.ContentType) {
				att.Preview = dataURI(f.ContentType, f.Data)
			}
			slots[i].attachment = att
		}(i, f)
	}
	wg.Wait()

	accepted := make([]Attachment, 0, len(files))
	var rejections []string
	for _, s := range slots {
		if s.rejected != "" {
			rejections = append(rejections, s.rejected)
			continue
		}
		accepted = append(accepted, s.attachment)
	}

	w.mu.Lock()
	if w.phase != PhaseCollecting {
		w.mu.Unlock()
		return IngestResult{}, apperrors.ErrSessionClosed
	}
	w.draft.Attachments = accepted
	w.lastRejected = len(rejections)
	switch {
	case len(accepted) == 0 && len(rejections) > 0:
		w.validationError = msgAllFilesRejected
	case len(accepted) == 0:
		w.validationError = msgDocumentsMissing
	default:
		w.validationError = ""
	}
	w.mu.Unlock()

	for _, msg := range rejections {
		w.deps.Notifier.Notify(msg, NotifyError)
	}

	return IngestResult{Accepted: len(accepted), Rejected: len(rejections)}, nil
}

func isImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// dataURI re-encodes an image payload for inline preview display.
func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
