package mockapi

import (
	"sort"
	"sync"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Store is the mock platform's in-memory state. Every map is guarded by one
// mutex; handlers run in gin's per-request goroutines.
type Store struct {
	mu sync.Mutex

	universities map[int64]*models.University
	users        map[int64]*models.User
	passwords    map[int64]string // bcrypt hashes
	emails       map[string]int64 // email -> user id
	profiles     map[int64]*models.AlumniProfile // keyed by user id
	events       map[int64]*models.Event
	eventRegs    map[int64]map[int64]bool // event id -> registered user ids
	posts        map[int64]*models.Post
	postLikes    map[int64]map[int64]bool // post id -> liking user ids
	comments     map[int64][]*models.Comment // post id -> comments, oldest first
	documents    map[int64]*models.DocumentRequest
	notifs       map[int64][]*models.Notification // user id -> notifications

	seq map[string]int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		universities: map[int64]*models.University{},
		users:        map[int64]*models.User{},
		passwords:    map[int64]string{},
		emails:       map[string]int64{},
		profiles:     map[int64]*models.AlumniProfile{},
		events:       map[int64]*models.Event{},
		eventRegs:    map[int64]map[int64]bool{},
		posts:        map[int64]*models.Post{},
		postLikes:    map[int64]map[int64]bool{},
		comments:     map[int64][]*models.Comment{},
		documents:    map[int64]*models.DocumentRequest{},
		notifs:       map[int64][]*models.Notification{},
		seq:          map[string]int64{},
	}
}

// nextID hands out per-entity sequential ids. Callers must hold mu.
func (s *Store) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

// notify appends a notification for a user. Callers must hold mu. Self
// notifications are dropped: the platform never tells you about your own
// actions.
func (s *Store) notify(userID, actorID int64, typ models.NotificationType, title, message string, refID int64) {
	if userID == actorID {
		return
	}
	n := &models.Notification{
		ID:          s.nextID("notification"),
		UserID:      userID,
		Type:        typ,
		Title:       title,
		Message:     message,
		ReferenceID: &refID,
		CreatedAt:   time.Now(),
	}
	s.notifs[userID] = append(s.notifs[userID], n)
}

// eventView copies an event with the viewer-relative fields filled in.
// Callers must hold mu.
func (s *Store) eventView(e *models.Event, viewerID int64) models.Event {
	out := *e
	regs := s.eventRegs[e.ID]
	out.AttendeeCount = len(regs)
	out.IsRegistered = viewerID != 0 && regs[viewerID]
	if creator, ok := s.users[e.CreatorID]; ok {
		c := *creator
		out.Creator = &c
	}
	return out
}

// postView copies a post with the viewer-relative fields filled in.
// Callers must hold mu.
func (s *Store) postView(p *models.Post, viewerID int64) models.Post {
	out := *p
	likes := s.postLikes[p.ID]
	out.LikeCount = len(likes)
	out.IsLiked = viewerID != 0 && likes[viewerID]
	out.CommentCount = len(s.comments[p.ID])
	if author, ok := s.users[p.AuthorID]; ok {
		a := *author
		out.Author = &a
	}
	if len(p.Media) > 0 {
		media := make([]models.PostMedia, len(p.Media))
		copy(media, p.Media)
		sort.Slice(media, func(i, j int) bool { return media[i].Position < media[j].Position })
		out.Media = media
	}
	return out
}

// sortedEvents returns events ordered by start date, id as tiebreak.
// Callers must hold mu.
func (s *Store) sortedEvents() []*models.Event {
	events := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].StartDate.Equal(events[j].StartDate) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartDate.Before(events[j].StartDate)
	})
	return events
}

// sortedProfiles returns alumni profiles ordered by graduation year, newest
// class first, id as tiebreak. Callers must hold mu.
func (s *Store) sortedProfiles() []*models.AlumniProfile {
	profiles := make([]*models.AlumniProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].GraduationYear != profiles[j].GraduationYear {
			return profiles[i].GraduationYear > profiles[j].GraduationYear
		}
		return profiles[i].ID < profiles[j].ID
	})
	return profiles
}

// sortedFeed returns visible posts, pinned first, then newest. Hidden posts
// are only shown to admins; deleted posts to nobody. Callers must hold mu.
func (s *Store) sortedFeed(viewerIsAdmin bool) []*models.Post {
	posts := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		switch p.Status {
		case models.PostActive:
			posts = append(posts, p)
		case models.PostHidden:
			if viewerIsAdmin {
				posts = append(posts, p)
			}
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// AddUser registers a user directly, bypassing the HTTP surface. Tests and
// the seeder use it; passwordHash must already be bcrypt-hashed.
func (s *Store) AddUser(user *models.User, passwordHash string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		user.ID = s.nextID("user")
	} else if user.ID > s.seq["user"] {
		s.seq["user"] = user.ID
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.IsActive = true
	s.users[user.ID] = user
	s.passwords[user.ID] = passwordHash
	s.emails[user.Email] = user.ID
	return user.ID
}

// AddUniversity registers a university directly.
func (s *Store) AddUniversity(u *models.University) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.nextID("university")
	} else if u.ID > s.seq["university"] {
		s.seq["university"] = u.ID
	}
	s.universities[u.ID] = u
	return u.ID
}

// AddEvent registers an event directly.
func (s *Store) AddEvent(e *models.Event) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		e.ID = s.nextID("event")
	} else if e.ID > s.seq["event"] {
		s.seq["event"] = e.ID
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
		e.UpdatedAt = now
	}
	if e.Status == "" {
		e.Status = models.EventUpcoming
	}
	s.events[e.ID] = e
	return e.ID
}

// AddPost registers a post directly.
func (s *Store) AddPost(p *models.Post) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextID("post")
	} else if p.ID > s.seq["post"] {
		s.seq["post"] = p.ID
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	if p.Status == "" {
		p.Status = models.PostActive
	}
	s.posts[p.ID] = p
	return p.ID
}

// AddProfile registers an alumni profile directly, keyed by its user.
func (s *Store) AddProfile(p *models.AlumniProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextID("profile")
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	s.profiles[p.UserID] = p
}
