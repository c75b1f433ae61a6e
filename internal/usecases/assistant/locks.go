package assistant

import "sync"

// lockUser сериализует обработку запросов одного пользователя: проверка
// квоты и запись использования образуют одну критическую секцию, параллельные
// обновления того же пользователя не могут пройти проверку одновременно.
// Возвращает функцию разблокировки для defer.
func (s *Service) lockUser(userID int64) func() {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
