package multipart

import (
	"strings"

	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/kv"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/strcomp"
)

const headersPrealloc = 4

// partHeader carries everything the header block of a single part told us.
type partHeader struct {
	headers        *kv.Storage
	disposition    string
	name           string
	filename       string
	extFilename    string
	contentType    string // full value, parameters included
	charset        string
	hasDisposition bool
	hasName        bool
	hasFilename    bool
	hasExtFilename bool
}

// readHeaderBlock consumes the current part's header block, the surrounding
// CRLF framing included, and parses it. The cursor is expected to be
// positioned at the CRLF terminating the boundary line; afterwards it points
// at the first byte of the part's content.
func (f *Form) readHeaderBlock() (hdr partHeader, err error) {
	end, found, err := f.scan.cur.Find("\r\n\r\n", f.cfg.MaxHeadersSize)
	if err != nil {
		return hdr, err
	}

	if !found {
		if f.scan.cur.EOF() && len(f.scan.cur.Window()) < f.cfg.MaxHeadersSize {
			return hdr, status.ErrUnexpectedStructure
		}

		return hdr, status.ErrHeadersTooLarge
	}

	raw, err := f.scan.cur.Read(end + 4)
	if err != nil {
		return hdr, err
	}

	// the block is copied out of the cursor: header values outlive the window
	block := string(raw)

	// strip the boundary-line CRLF and the blank-line terminator
	return parseHeaderBlock(block[2 : len(block)-2])
}

func parseHeaderBlock(block string) (hdr partHeader, err error) {
	hdr.headers = kv.NewPrealloc(headersPrealloc)

	for len(block) > 0 {
		var line string
		line, block, _ = strings.Cut(block, "\r\n")

		key, value, found := strings.Cut(line, ":")
		if !found {
			// not a header line; must ignore
			continue
		}

		value = strutil.LStripWS(value)
		hdr.headers.Add(key, value)

		switch {
		case strcomp.EqualFold(key, "Content-Disposition"):
			if err = hdr.parseDisposition(value); err != nil {
				return hdr, err
			}
		case strcomp.EqualFold(key, "Content-Type"):
			hdr.contentType = value
			if err = hdr.parseContentTypeParams(value); err != nil {
				return hdr, err
			}
		case strcomp.EqualFold(key, "Content-Transfer-Encoding"):
			// rejected by design, not merely unimplemented
			return hdr, status.ErrUnsupportedTransferEncoding
		}
	}

	switch {
	case !hdr.hasDisposition:
		return hdr, status.ErrMissingDisposition
	case hdr.disposition == "form-data" && (!hdr.hasName || len(hdr.name) == 0):
		// form-data entries are meaningless without a field name. Other
		// disposition types (attachment in nested multipart/mixed, for
		// one) get along fine without it.
		return hdr, status.ErrBadDisposition
	}

	return hdr, nil
}

func (h *partHeader) parseDisposition(value string) error {
	h.hasDisposition = true

	disposition, params := strutil.CutHeader(value)
	h.disposition = strutil.RStripWS(disposition)

	if len(params) == 0 {
		return nil
	}

	for key, value := range strutil.WalkKV(params) {
		if len(key) == 0 && len(value) == 0 {
			return status.ErrBadDisposition
		}

		switch key {
		case "name":
			h.name = value
			h.hasName = true
		case "filename":
			h.filename = value
			h.hasFilename = true
		case "filename*":
			h.extFilename = value
			h.hasExtFilename = true
		}
	}

	return nil
}

func (h *partHeader) parseContentTypeParams(value string) error {
	params := strutil.CutParams(value)
	if len(params) == 0 {
		return nil
	}

	for key, value := range strutil.WalkKV(params) {
		if len(key) == 0 && len(value) == 0 {
			return status.ErrUnexpectedStructure
		}

		if key == "charset" {
			h.charset = value
		}
	}

	return nil
}
