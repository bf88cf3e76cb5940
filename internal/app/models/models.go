package models

// Role defines the user role type
type Role string

const (
	RoleAlumni     Role = "alumni"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// PostStatus represents the moderation state of a post
type PostStatus string

const (
	PostActive  PostStatus = "active"
	PostHidden  PostStatus = "hidden"
	PostDeleted PostStatus = "deleted"
)

// PostTag categorizes a post in the feed
type PostTag string

const (
	TagGeneral  PostTag = "general"
	TagJob      PostTag = "job"
	TagEvent    PostTag = "event"
	TagMemory   PostTag = "memory"
	TagQuestion PostTag = "question"
)

// MediaType distinguishes post attachments
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// DocumentType enumerates the kinds of documents alumni can request
type DocumentType string

const (
	DocTranscript             DocumentType = "transcript"
	DocCertificate            DocumentType = "certificate"
	DocDiploma                DocumentType = "diploma"
	DocRecommendationLetter   DocumentType = "recommendation_letter"
	DocEnrollmentVerification DocumentType = "enrollment_verification"
)

// DocumentStatus represents the workflow state of a document request.
// Requests move pending -> approved|rejected, approved -> processing,
// processing -> completed. The requester can cancel while still pending.
type DocumentStatus string

const (
	DocPending    DocumentStatus = "pending"
	DocApproved   DocumentStatus = "approved"
	DocRejected   DocumentStatus = "rejected"
	DocProcessing DocumentStatus = "processing"
	DocCompleted  DocumentStatus = "completed"
	DocCancelled  DocumentStatus = "cancelled"
)

// NotificationType identifies what produced a notification
type NotificationType string

const (
	NotifLike         NotificationType = "like"
	NotifComment      NotificationType = "comment"
	NotifConnection   NotificationType = "connection"
	NotifEvent        NotificationType = "event"
	NotifJob          NotificationType = "job"
	NotifAnnouncement NotificationType = "announcement"
)
