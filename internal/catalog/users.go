package catalog

import "context"

type createUserInput struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

// CreateUser registers a user. Mobile numbers are not required to be unique;
// lookups by mobile resolve to the earliest user registered with it.
func (s *Store) CreateUser(_ context.Context, name, mobile string) (User, error) {
	if err := checkInput(createUserInput{Name: name, Mobile: mobile}); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &User{ID: s.newID(), Name: name, Mobile: mobile}
	s.users = append(s.users, user)
	s.usersByID[user.ID] = user
	return *user, nil
}

// Users returns every user in creation order.
func (s *Store) Users(_ context.Context) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

// PlaylistsByCreator returns the playlists created by the user with mobile,
// oldest first.
func (s *Store) PlaylistsByCreator(_ context.Context, mobile string) ([]Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return nil, err
	}
	return s.playlistsFor(s.creatorPlaylists[user.ID]), nil
}

// PlaylistsByUser returns every playlist the user has created or opened, in
// the order they first appeared for that user.
func (s *Store) PlaylistsByUser(_ context.Context, mobile string) ([]Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.userByMobile(mobile)
	if err != nil {
		return nil, err
	}
	return s.playlistsFor(s.userPlaylists[user.ID]), nil
}
