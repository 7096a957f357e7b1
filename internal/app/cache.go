package app

// Bounded cache of recently seen message texts: the before-content source for
// edit mirroring. The gateway only delivers the edited state.

const maxCachedMessages = 2048

type messageKey struct {
	chatID    int64
	messageID int
}

func (a *App) rememberMessage(chatID int64, messageID int, text string) {
	a.msgCacheMu.Lock()
	defer a.msgCacheMu.Unlock()

	key := messageKey{chatID: chatID, messageID: messageID}
	if _, exists := a.msgCache[key]; !exists {
		a.msgCacheOrder = append(a.msgCacheOrder, key)
	}
	a.msgCache[key] = text

	for len(a.msgCacheOrder) > maxCachedMessages {
		oldest := a.msgCacheOrder[0]
		a.msgCacheOrder = a.msgCacheOrder[1:]
		delete(a.msgCache, oldest)
	}
}

func (a *App) cachedMessage(chatID int64, messageID int) (string, bool) {
	a.msgCacheMu.Lock()
	defer a.msgCacheMu.Unlock()

	text, ok := a.msgCache[messageKey{chatID: chatID, messageID: messageID}]
	return text, ok
}
