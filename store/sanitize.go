package store

import (
	"github.com/ztrade/launchweek/internal/textclip"
)

// Column widths of the varchar columns above.
const (
	maxTitleBytes    = 200
	maxOwnerBytes    = 100
	maxActionBytes   = 100
	maxUserNameBytes = 100
)

func sanitizeLaunchForInsert(record *LaunchRecord) []string {
	if record == nil {
		return nil
	}
	return clipFields([]clipField{
		{name: "title", ptr: &record.Title, max: maxTitleBytes},
		{name: "owner", ptr: &record.Owner, max: maxOwnerBytes},
	})
}

func sanitizeActivityForInsert(record *ActivityRecord) []string {
	if record == nil {
		return nil
	}
	return clipFields([]clipField{
		{name: "action", ptr: &record.Action, max: maxActionBytes},
		{name: "userName", ptr: &record.UserName, max: maxUserNameBytes},
	})
}

type clipField struct {
	name string
	ptr  *string
	max  int
}

func clipFields(fields []clipField) []string {
	changed := make([]string, 0)
	for _, field := range fields {
		if v, clipped := textclip.String(*field.ptr, field.max); clipped {
			*field.ptr = v
			changed = append(changed, field.name)
		}
	}
	return changed
}
