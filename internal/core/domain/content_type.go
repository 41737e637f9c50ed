package domain

// ContentType classifies what kind of content a searchable item carries.
// Native indexes use it to choose display treatment and SearchKit uses it
// to maintain per-type counters in the index statistics.
type ContentType string

const (
	ContentTypeGeneric    ContentType = "generic"
	ContentTypeDocument   ContentType = "document"
	ContentTypeImage      ContentType = "image"
	ContentTypeAudio      ContentType = "audio"
	ContentTypeVideo      ContentType = "video"
	ContentTypeMessage    ContentType = "message"
	ContentTypeEmail      ContentType = "email"
	ContentTypeContact    ContentType = "contact"
	ContentTypeEvent      ContentType = "event"
	ContentTypeLocation   ContentType = "location"
	ContentTypeNote       ContentType = "note"
	ContentTypeTask       ContentType = "task"
	ContentTypeFile       ContentType = "file"
	ContentTypeFolder     ContentType = "folder"
	ContentTypeWebpage    ContentType = "webpage"
	ContentTypeAppContent ContentType = "app_content"
)

// IsValid checks if the content type is one of the supported values.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeGeneric, ContentTypeDocument, ContentTypeImage,
		ContentTypeAudio, ContentTypeVideo, ContentTypeMessage,
		ContentTypeEmail, ContentTypeContact, ContentTypeEvent,
		ContentTypeLocation, ContentTypeNote, ContentTypeTask,
		ContentTypeFile, ContentTypeFolder, ContentTypeWebpage,
		ContentTypeAppContent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the content type.
func (c ContentType) String() string {
	return string(c)
}

// MIMEType returns the default MIME type hint handed to native indexes
// when the item does not declare a more specific one.
func (c ContentType) MIMEType() string {
	switch c {
	case ContentTypeDocument:
		return "application/pdf"
	case ContentTypeImage:
		return "image/jpeg"
	case ContentTypeAudio:
		return "audio/mpeg"
	case ContentTypeVideo:
		return "video/mp4"
	case ContentTypeMessage, ContentTypeEmail:
		return "message/rfc822"
	case ContentTypeContact:
		return "text/vcard"
	case ContentTypeEvent:
		return "text/calendar"
	case ContentTypeLocation:
		return "application/geo+json"
	case ContentTypeNote, ContentTypeTask:
		return "text/plain"
	case ContentTypeFolder:
		return "inode/directory"
	case ContentTypeWebpage:
		return "text/html"
	default:
		return "application/octet-stream"
	}
}

// Description returns a human-readable description of the content type.
func (c ContentType) Description() string {
	switch c {
	case ContentTypeGeneric:
		return "Generic content"
	case ContentTypeDocument:
		return "Text documents, PDFs and spreadsheets"
	case ContentTypeImage:
		return "Photos and other images"
	case ContentTypeAudio:
		return "Music and audio recordings"
	case ContentTypeVideo:
		return "Video recordings"
	case ContentTypeMessage:
		return "Chat and instant messages"
	case ContentTypeEmail:
		return "Email messages"
	case ContentTypeContact:
		return "People and contact cards"
	case ContentTypeEvent:
		return "Calendar events"
	case ContentTypeLocation:
		return "Places and geographic locations"
	case ContentTypeNote:
		return "Notes"
	case ContentTypeTask:
		return "Tasks and reminders"
	case ContentTypeFile:
		return "Files of any kind"
	case ContentTypeFolder:
		return "Folders and directories"
	case ContentTypeWebpage:
		return "Web pages"
	case ContentTypeAppContent:
		return "In-app content"
	default:
		return "Unknown content type"
	}
}

// AllContentTypes returns all supported content types.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeGeneric,
		ContentTypeDocument,
		ContentTypeImage,
		ContentTypeAudio,
		ContentTypeVideo,
		ContentTypeMessage,
		ContentTypeEmail,
		ContentTypeContact,
		ContentTypeEvent,
		ContentTypeLocation,
		ContentTypeNote,
		ContentTypeTask,
		ContentTypeFile,
		ContentTypeFolder,
		ContentTypeWebpage,
		ContentTypeAppContent,
	}
}
