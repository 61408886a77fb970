// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Snapshot is the unit of synchronisation between a device and the remote
// snapshot store. A snapshot is built fresh for every push and decoded fresh
// for every pull; it is never mutated in place.
type Snapshot struct {
	// Data is the full application document at the moment the snapshot
	// was taken.
	Data AppData `json:"data"`

	// Version is the local mutation counter of the device that produced
	// the snapshot. It is the only conflict-resolution signal.
	Version int64 `json:"version"`

	// Timestamp is the wall-clock time the snapshot was produced, in epoch
	// milliseconds.
	Timestamp int64 `json:"timestamp"`

	// DeviceID tags the installation that produced the snapshot.
	DeviceID string `json:"deviceId"`
}

// AppData is the user's whole reading document. No field inside it carries
// its own version.
type AppData struct {
	Books          []Book          `json:"books"`
	Friends        []Friend        `json:"friends"`
	Activities     []Activity      `json:"activities"`
	Groups         []Group         `json:"groups"`
	FriendRequests []FriendRequest `json:"friendRequests"`
	Challenge      *Challenge      `json:"challenge,omitempty"`
	Stats          UserStats       `json:"stats"`
	User           UserProfile     `json:"user"`
}

// Clone returns a copy of d whose slices and challenge pointer can be
// modified without affecting d.
func (d AppData) Clone() AppData {
	out := AppData{
		Books:          slices.Clone(d.Books),
		Friends:        slices.Clone(d.Friends),
		Activities:     slices.Clone(d.Activities),
		Groups:         make([]Group, 0, len(d.Groups)),
		FriendRequests: slices.Clone(d.FriendRequests),
		Stats:          d.Stats,
		User:           d.User,
	}
	out.Stats.Achievements = slices.Clone(d.Stats.Achievements)
	for _, g := range d.Groups {
		g.MemberIDs = slices.Clone(g.MemberIDs)
		out.Groups = append(out.Groups, g)
	}
	if d.Challenge != nil {
		c := *d.Challenge
		out.Challenge = &c
	}
	return out
}

// CollectionKind names one of the collections stored in [AppData].
type CollectionKind string

const (
	KindBooks          CollectionKind = "books"
	KindFriends        CollectionKind = "friends"
	KindActivities     CollectionKind = "activities"
	KindGroups         CollectionKind = "groups"
	KindFriendRequests CollectionKind = "friend_requests"
	KindChallenge      CollectionKind = "challenge"
	KindStats          CollectionKind = "stats"
	KindUser           CollectionKind = "user"
)

// AllCollectionKinds lists every kind replaced by a restore, in the order
// they are written.
var AllCollectionKinds = []CollectionKind{
	KindBooks,
	KindFriends,
	KindActivities,
	KindGroups,
	KindFriendRequests,
	KindChallenge,
	KindStats,
	KindUser,
}
