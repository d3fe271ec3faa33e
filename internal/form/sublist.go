package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"ci-request-api/internal/util"
)

// ParentCIRelation links the request's CI to an existing CMDB CI.
type ParentCIRelation struct {
	ID     string `json:"id"`
	CIID   string `json:"ciId"`
	CIName string `json:"ciName"`
}

// AttachedURL is one reference link row.
type AttachedURL struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Step        int    `json:"step"`
	UpdateBy    string `json:"updateBy"`
	UpdateDate  string `json:"updateDate"`
}

// AttachedFile is one attachment row. Content is base64 so the entry
// survives JSON persistence without a binary channel.
type AttachedFile struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	FileName       string `json:"fileName"`
	FileSizeBytes  int64  `json:"fileSizeBytes"`
	EncodedContent string `json:"encodedContent"`
	Step           int    `json:"step"`
	UpdateBy       string `json:"updateBy"`
	UpdateDate     string `json:"updateDate"`
}

var (
	// ErrFileMissing means the entry has no stored content at all.
	ErrFileMissing = errors.New("file content is missing")
	// ErrFileCorrupted means stored content exists but cannot be decoded.
	ErrFileCorrupted = errors.New("file content could not be decoded")
)

func stampDate(now time.Time) string {
	return now.Format("2006-01-02")
}

// ParentCIList manages the parent-CI relations of one form. The list
// never contains the form's own CI or a duplicate.
type ParentCIList struct {
	OwnCIID string
	Items   []ParentCIRelation
}

// CIRef is a selectable CMDB CI.
type CIRef struct {
	ID     string `json:"id"`
	CIName string `json:"ciName"`
}

// Candidates filters a CMDB catalog for the add dialog: substring
// search over id and name, minus the form's own CI and anything
// already attached.
func (l *ParentCIList) Candidates(catalog []CIRef, search string) []CIRef {
	query := strings.ToLower(strings.TrimSpace(search))
	var out []CIRef
	for _, ci := range catalog {
		if ci.ID == l.OwnCIID {
			continue
		}
		if l.contains(ci.ID) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(ci.ID), query) &&
			!strings.Contains(strings.ToLower(ci.CIName), query) {
			continue
		}
		out = append(out, ci)
	}
	return out
}

// AddSelected appends the confirmed multi-select in one shot, skipping
// self-references and duplicates defensively.
func (l *ParentCIList) AddSelected(refs []CIRef) {
	for _, ci := range refs {
		if ci.ID == l.OwnCIID || l.contains(ci.ID) {
			continue
		}
		l.Items = append(l.Items, ParentCIRelation{
			ID:     uuid.NewString(),
			CIID:   ci.ID,
			CIName: ci.CIName,
		})
	}
}

// Remove deletes one relation by entry id.
func (l *ParentCIList) Remove(id string) {
	for i, item := range l.Items {
		if item.ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

// Search returns the displayed subset without mutating the list.
func (l *ParentCIList) Search(text string) []ParentCIRelation {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return l.Items
	}
	var out []ParentCIRelation
	for _, item := range l.Items {
		if strings.Contains(strings.ToLower(item.CIID), query) ||
			strings.Contains(strings.ToLower(item.CIName), query) {
			out = append(out, item)
		}
	}
	return out
}

func (l *ParentCIList) contains(ciID string) bool {
	for _, item := range l.Items {
		if item.CIID == ciID {
			return true
		}
	}
	return false
}

// AttachURLList manages the reference-link collection.
type AttachURLList struct {
	Items []AttachedURL
}

// Add validates and appends one link. A non-nil return is the
// field-level error map for the dialog; the list is unchanged then.
func (l *AttachURLList) Add(description, rawURL, updateBy string) map[string]string {
	errs := map[string]string{}

	rawURL = strings.TrimSpace(rawURL)
	description = strings.TrimSpace(description)

	if rawURL == "" {
		errs["url"] = "Attach URL is required"
	} else if !isValidURL(rawURL) {
		errs["url"] = "Please enter a valid URL"
	}
	if description == "" {
		errs["description"] = "Description is required"
	}
	if len(errs) > 0 {
		return errs
	}

	l.Items = append(l.Items, AttachedURL{
		ID:          "URL-" + uuid.NewString(),
		Description: description,
		URL:         rawURL,
		Step:        len(l.Items) + 1,
		UpdateBy:    updateBy,
		UpdateDate:  stampDate(time.Now()),
	})
	return nil
}

// Remove deletes by id and renumbers the survivors to 1..N.
func (l *AttachURLList) Remove(id string) {
	for i, item := range l.Items {
		if item.ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			break
		}
	}
	for i := range l.Items {
		l.Items[i].Step = i + 1
	}
}

// Search filters the displayed rows over url and description.
func (l *AttachURLList) Search(text string) []AttachedURL {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return l.Items
	}
	var out []AttachedURL
	for _, item := range l.Items {
		if strings.Contains(strings.ToLower(item.URL), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			out = append(out, item)
		}
	}
	return out
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// AttachFileList manages the attachment collection.
type AttachFileList struct {
	Items []AttachedFile
}

// Add validates and appends one attachment, encoding the content to
// base64. Oversize files are rejected before any encoding happens.
func (l *AttachFileList) Add(description, fileName string, content []byte, updateBy string) map[string]string {
	errs := map[string]string{}

	if fileName == "" && len(content) == 0 {
		errs["file"] = "Attach File is required"
	} else if int64(len(content)) > util.MaxAttachmentSize {
		errs["file"] = fmt.Sprintf("File size exceeds the %s limit, please attach a smaller file",
			util.FormatFileSize(util.MaxAttachmentSize))
	}
	if len(errs) > 0 {
		return errs
	}

	l.Items = append(l.Items, AttachedFile{
		ID:             "FILE-" + uuid.NewString(),
		Description:    strings.TrimSpace(description),
		FileName:       fileName,
		FileSizeBytes:  int64(len(content)),
		EncodedContent: base64.StdEncoding.EncodeToString(content),
		Step:           len(l.Items) + 1,
		UpdateBy:       updateBy,
		UpdateDate:     stampDate(time.Now()),
	})
	return nil
}

// Remove deletes by id and renumbers the survivors to 1..N.
func (l *AttachFileList) Remove(id string) {
	for i, item := range l.Items {
		if item.ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			break
		}
	}
	for i := range l.Items {
		l.Items[i].Step = i + 1
	}
}

// Search filters the displayed rows over file name and description.
func (l *AttachFileList) Search(text string) []AttachedFile {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return l.Items
	}
	var out []AttachedFile
	for _, item := range l.Items {
		if strings.Contains(strings.ToLower(item.FileName), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			out = append(out, item)
		}
	}
	return out
}

// Open returns the decoded content of one entry for download. An entry
// without content and an entry whose content no longer decodes are
// different failures and carry different errors.
func (l *AttachFileList) Open(id string) ([]byte, string, error) {
	for _, item := range l.Items {
		if item.ID != id {
			continue
		}
		if item.EncodedContent == "" {
			return nil, "", ErrFileMissing
		}
		data, err := base64.StdEncoding.DecodeString(item.EncodedContent)
		if err != nil {
			return nil, "", ErrFileCorrupted
		}
		return data, item.FileName, nil
	}
	return nil, "", ErrFileMissing
}
