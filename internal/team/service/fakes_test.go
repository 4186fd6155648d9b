package service

import (
	"context"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/discord"
	"github.com/louisbranch/jambot/internal/storage"
	"github.com/louisbranch/jambot/internal/team/domain"
)

type fakeStore struct {
	records map[snowflake.ID]domain.OwnershipRecord
	// insertRace, when set, is inserted right before the first Put attempt to
	// simulate a concurrent provision winning the commit.
	insertRace *domain.OwnershipRecord
	deleteErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[snowflake.ID]domain.OwnershipRecord)}
}

func (f *fakeStore) PutOwnership(_ context.Context, record domain.OwnershipRecord) error {
	if f.insertRace != nil {
		f.records[f.insertRace.Owner] = *f.insertRace
		f.insertRace = nil
	}
	if _, ok := f.records[record.Owner]; ok {
		return storage.ErrOwnershipExists
	}
	f.records[record.Owner] = record
	return nil
}

func (f *fakeStore) GetOwnership(_ context.Context, owner snowflake.ID) (domain.OwnershipRecord, error) {
	record, ok := f.records[owner]
	if !ok {
		return domain.OwnershipRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) DeleteOwnership(_ context.Context, owner snowflake.ID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.records[owner]; !ok {
		return storage.ErrNotFound
	}
	delete(f.records, owner)
	return nil
}

type createdChannel struct {
	guildID  snowflake.ID
	parentID snowflake.ID
	name     string
	topic    string
	kind     discord.ChannelKind
}

type fakeChannels struct {
	nextID  snowflake.ID
	created []createdChannel
	deleted []snowflake.ID

	categoryErr error
	textErr     error
	voiceErr    error
	deleteErr   error

	// kind overrides let tests simulate the platform returning the wrong
	// resource kind for a successful request.
	categoryKind discord.ChannelKind
	textKind     discord.ChannelKind
	voiceKind    discord.ChannelKind
}

func newFakeChannels() *fakeChannels {
	return &fakeChannels{
		nextID:       snowflake.ID(100),
		categoryKind: discord.KindCategory,
		textKind:     discord.KindText,
		voiceKind:    discord.KindVoice,
	}
}

func (f *fakeChannels) calls() int {
	return len(f.created) + len(f.deleted)
}

func (f *fakeChannels) create(guildID, parentID snowflake.ID, name, topic string, kind discord.ChannelKind) discord.Channel {
	f.nextID++
	f.created = append(f.created, createdChannel{
		guildID:  guildID,
		parentID: parentID,
		name:     name,
		topic:    topic,
		kind:     kind,
	})
	return discord.Channel{ID: f.nextID, Kind: kind, Name: name}
}

func (f *fakeChannels) CreateCategory(_ context.Context, guildID snowflake.ID, name string) (discord.Channel, error) {
	if f.categoryErr != nil {
		return discord.Channel{}, f.categoryErr
	}
	return f.create(guildID, 0, name, "", f.categoryKind), nil
}

func (f *fakeChannels) CreateTextChannel(_ context.Context, guildID, parentID snowflake.ID, name, topic string) (discord.Channel, error) {
	if f.textErr != nil {
		return discord.Channel{}, f.textErr
	}
	return f.create(guildID, parentID, name, topic, f.textKind), nil
}

func (f *fakeChannels) CreateVoiceChannel(_ context.Context, guildID, parentID snowflake.ID, name string) (discord.Channel, error) {
	if f.voiceErr != nil {
		return discord.Channel{}, f.voiceErr
	}
	return f.create(guildID, parentID, name, "", f.voiceKind), nil
}

func (f *fakeChannels) DeleteChannel(_ context.Context, channelID snowflake.ID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, channelID)
	return nil
}

type fakeRoles struct {
	membership map[snowflake.ID][]string
	guildRoles []discord.Role
	added      []snowflake.ID
	removed    []snowflake.ID
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{membership: make(map[snowflake.ID][]string)}
}

func (f *fakeRoles) grant(userID snowflake.ID, roles ...string) {
	f.membership[userID] = append(f.membership[userID], roles...)
}

func (f *fakeRoles) HasRole(_ context.Context, _ snowflake.ID, userID snowflake.ID, roleName string) (bool, error) {
	for _, held := range f.membership[userID] {
		if strings.EqualFold(held, roleName) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoles) FindRole(_ context.Context, _ snowflake.ID, name string) (discord.Role, bool, error) {
	for _, role := range f.guildRoles {
		if strings.EqualFold(role.Name, name) {
			return role, true, nil
		}
	}
	return discord.Role{}, false, nil
}

func (f *fakeRoles) AddRole(_ context.Context, _ snowflake.ID, _ snowflake.ID, roleID snowflake.ID) error {
	f.added = append(f.added, roleID)
	return nil
}

func (f *fakeRoles) RemoveRole(_ context.Context, _ snowflake.ID, _ snowflake.ID, roleID snowflake.ID) error {
	f.removed = append(f.removed, roleID)
	return nil
}
