package coordinator

import "sync"

// Subscribe канал снимков. Буфер в один элемент: медленный подписчик
// пропускает промежуточные версии и получает последнюю.
// Текущий снимок отправляется сразу.
func (c *Coordinator) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = ch
	ch <- c.state
	c.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}

	return ch, unsubscribe
}

// publish вызывается под c.mu, поэтому отправитель у канала один
func (c *Coordinator) publish(s Snapshot) {
	for _, ch := range c.subs {
		select {
		case ch <- s:
			continue
		default:
		}
		// устаревший снимок выбрасываем
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// Subscribers количество активных подписок
func (c *Coordinator) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Busy есть подписчики или незавершенный запрос бронирования/отмены
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs) > 0 || len(c.state.Pending) > 0
}
