package server

// SyncBuffer collects motion updates per replica and flushes them in one go at the end of a tick.
type SyncBuffer struct {
	buffer     map[uint64][]MotionUpdate
	replicaIDs []uint64
	send       func(replicaID uint64, updates []MotionUpdate)
}

func NewSyncBuffer(replicaIDs []uint64, writer func(replicaID uint64, updates []MotionUpdate)) *SyncBuffer {
	return &SyncBuffer{make(map[uint64][]MotionUpdate), replicaIDs, writer}
}

func (sb *SyncBuffer) AddUpdatesFor(replicaID uint64, updates []MotionUpdate) {
	if len(updates) == 0 {
		return
	}
	sb.buffer[replicaID] = append(sb.buffer[replicaID], updates...)
}

func (sb *SyncBuffer) AddUpdatesForAll(updates []MotionUpdate) {
	for _, replicaID := range sb.replicaIDs {
		sb.AddUpdatesFor(replicaID, updates)
	}
}

func (sb *SyncBuffer) Pending(replicaID uint64) int {
	return len(sb.buffer[replicaID])
}

func (sb *SyncBuffer) SendAll() {
	for _, replicaID := range sb.replicaIDs {
		updates, ok := sb.buffer[replicaID]
		if !ok {
			continue
		}
		sb.send(replicaID, updates)
	}
	sb.buffer = make(map[uint64][]MotionUpdate)
}
