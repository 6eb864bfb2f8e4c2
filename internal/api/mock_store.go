package api

import (
	"fmt"
	"strings"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"timeoff/internal/domain"
)

// mockStore is the in-memory dataset that answers when the backend is
// unreachable. Writes mutate it the way a real backend would persist them,
// so reads in the same session reflect prior writes. Everything is guarded
// by the mutex: callers run on real goroutines, not a browser event loop.
type mockStore struct {
	mu  sync.RWMutex
	clk clock.Clock

	users     []domain.User
	teams     []domain.Team
	pods      []domain.Pod
	leaves    []domain.LeaveRecord
	holidays  []domain.PublicHoliday
	history   map[string][]domain.ViewHistoryItem
	favorites map[string][]string
}

func newMockStore(clk clock.Clock) *mockStore {
	s := &mockStore{clk: clk}
	s.reset()
	return s
}

// reset reseeds the dataset. Equivalent to a full page reload.
func (s *mockStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = seedUsers()
	s.teams = seedTeams()
	s.pods = seedPods()
	s.leaves = seedLeaves()
	s.holidays = seedHolidays()
	s.history = make(map[string][]domain.ViewHistoryItem)
	s.favorites = make(map[string][]string)
}

// --- users ---

func (s *mockStore) Users() ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...), nil
}

func (s *mockStore) UserByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// DefaultUser stands in for the remote login endpoint.
func (s *mockStore) DefaultUser() (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.users) == 0 {
		return domain.User{}, nil
	}
	return s.users[0], nil
}

func (s *mockStore) SearchUsers(query string, limit int) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.User, 0, limit)
	lower := strings.ToLower(query)
	for _, u := range s.users {
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), lower) &&
			!strings.Contains(strings.ToLower(u.Email), lower) &&
			!strings.Contains(strings.ToLower(u.EmployeeID), lower) {
			continue
		}
		matches = append(matches, u)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// --- teams ---

func (s *mockStore) VirtualTeams() ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]domain.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if t.Type == domain.TeamTypeVirtual {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

func (s *mockStore) TeamsCreatedBy(userID string) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]domain.Team, 0)
	for _, t := range s.teams {
		if t.Type == domain.TeamTypeVirtual && t.CreatedBy == userID {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

func (s *mockStore) TeamByID(id string) (*domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			team := t
			return &team, nil
		}
	}
	return nil, nil
}

func (s *mockStore) SearchTeams(query string, limit int) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Team, 0, limit)
	lower := strings.ToLower(query)
	for _, t := range s.teams {
		if query != "" && !strings.Contains(strings.ToLower(t.Name), lower) {
			continue
		}
		matches = append(matches, t)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// UpsertTeam replaces the team with the same id, or inserts it with a fresh
// id when unknown.
func (s *mockStore) UpsertTeam(team domain.Team) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teams {
		if t.ID == team.ID {
			s.teams[i] = team
			return team, nil
		}
	}
	team.ID = newTeamID()
	s.teams = append(s.teams, team)
	return team, nil
}

func (s *mockStore) CreateTeam(name string, memberIDs []string, createdBy string) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team := domain.Team{
		ID:        newTeamID(),
		Name:      name,
		Type:      domain.TeamTypeVirtual,
		MemberIDs: append([]string(nil), memberIDs...),
		CreatedBy: createdBy,
	}
	s.teams = append(s.teams, team)
	return team, nil
}

// DeleteTeam removes the team if present. Deleting an unknown id is a
// no-op.
func (s *mockStore) DeleteTeam(id string) (struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teams {
		if t.ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			break
		}
	}
	return struct{}{}, nil
}

// --- pods ---

func (s *mockStore) Pods() ([]domain.Pod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Pod(nil), s.pods...), nil
}

func (s *mockStore) PodByID(id string) (*domain.Pod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pods {
		if p.ID == id {
			pod := p
			return &pod, nil
		}
	}
	return nil, nil
}

// --- leaves ---

func (s *mockStore) Leaves() ([]domain.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.LeaveRecord(nil), s.leaves...), nil
}

func (s *mockStore) LeavesByUser(userID string) ([]domain.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	leaves := make([]domain.LeaveRecord, 0)
	for _, l := range s.leaves {
		if l.UserID == userID {
			leaves = append(leaves, l)
		}
	}
	return leaves, nil
}

// memberLeaves joins member users with their leave records, filtered to
// those overlapping rng.
func (s *mockStore) memberLeaves(memberIDs []string, rng domain.DateRange) []domain.UserLeaves {
	ids := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		ids[id] = true
	}

	rows := make([]domain.UserLeaves, 0, len(memberIDs))
	for _, u := range s.users {
		if !ids[u.ID] {
			continue
		}
		leaves := make([]domain.LeaveRecord, 0)
		for _, l := range s.leaves {
			if l.UserID == u.ID && rng.Overlaps(l.StartDate, l.EndDate) {
				leaves = append(leaves, l)
			}
		}
		rows = append(rows, domain.UserLeaves{User: u, Leaves: leaves})
	}
	return rows
}

func (s *mockStore) TeamLeaves(teamID string, rng domain.DateRange) ([]domain.UserLeaves, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == teamID {
			return s.memberLeaves(t.MemberIDs, rng), nil
		}
	}
	return []domain.UserLeaves{}, nil
}

// PodLeaves joins a pod roster with leave records. A caller-supplied pod
// skips the roster lookup.
func (s *mockStore) PodLeaves(podID string, hint *domain.Pod, rng domain.DateRange) ([]domain.UserLeaves, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if hint != nil {
		return s.memberLeaves(hint.MemberIDs, rng), nil
	}
	for _, p := range s.pods {
		if p.ID == podID {
			return s.memberLeaves(p.MemberIDs, rng), nil
		}
	}
	return []domain.UserLeaves{}, nil
}

func (s *mockStore) SaveLeave(leave domain.LeaveRecord) (domain.LeaveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leaves {
		if l.ID == leave.ID {
			s.leaves[i] = leave
			break
		}
	}
	return leave, nil
}

func (s *mockStore) CreateLeave(leave domain.LeaveRecord) (domain.LeaveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	leave.ID = newLeaveID()
	s.leaves = append(s.leaves, leave)
	return leave, nil
}

func (s *mockStore) DeleteLeave(id string) (struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leaves {
		if l.ID == id {
			s.leaves = append(s.leaves[:i], s.leaves[i+1:]...)
			break
		}
	}
	return struct{}{}, nil
}

// --- holidays ---

func (s *mockStore) Holidays(year int) ([]domain.PublicHoliday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefix := fmt.Sprintf("%04d-", year)
	holidays := make([]domain.PublicHoliday, 0, len(s.holidays))
	for _, h := range s.holidays {
		if strings.HasPrefix(h.Date, prefix) {
			holidays = append(holidays, h)
		}
	}
	return holidays, nil
}

// --- history / favorites ---

func (s *mockStore) History(userID string, limit, offset int) ([]domain.ViewHistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.history[userID]
	if offset >= len(list) {
		return []domain.ViewHistoryItem{}, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return append([]domain.ViewHistoryItem(nil), list...), nil
}

// AddHistory moves an already-present (id, type) entry to the front instead
// of duplicating it, then truncates to the cap.
func (s *mockStore) AddHistory(userID string, item domain.ViewHistoryItem) (domain.ViewHistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.history[userID]
	kept := make([]domain.ViewHistoryItem, 0, len(list)+1)
	item.Timestamp = s.clk.Now().UnixMilli()
	kept = append(kept, item)
	for _, existing := range list {
		if existing.ID == item.ID && existing.Type == item.Type {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) > domain.HistoryLimit {
		kept = kept[:domain.HistoryLimit]
	}
	s.history[userID] = kept
	return item, nil
}

func (s *mockStore) Favorites(userID string, limit, offset int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.favorites[userID]
	if offset >= len(list) {
		return []string{}, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return append([]string(nil), list...), nil
}

// ToggleFavorite flips membership of teamID in the user's favorite set and
// returns the resulting full list.
func (s *mockStore) ToggleFavorite(userID, teamID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.favorites[userID]
	for i, id := range list {
		if id == teamID {
			list = append(append([]string(nil), list[:i]...), list[i+1:]...)
			s.favorites[userID] = list
			return append([]string(nil), list...), nil
		}
	}
	list = append(append([]string(nil), list...), teamID)
	s.favorites[userID] = list
	return append([]string(nil), list...), nil
}

func newTeamID() string {
	return "vt_" + uuid.NewString()
}

func newLeaveID() string {
	return "l_" + uuid.NewString()
}
