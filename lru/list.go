package lru

// recencyList is a doubly-linked list ordering entries from most recently
// used (head) to least recently used (tail). All pointer manipulation is
// centralized here for correctness and readability.
type recencyList struct {
	head *entry
	tail *entry
}

// pushFront adds a node to the head of the list (most recently used
// position).
func (l *recencyList) pushFront(node *entry) {
	node.next = l.head
	node.prev = nil
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
}

// remove removes a node from anywhere in the list.
func (l *recencyList) remove(node *entry) {
	if node == l.head && node == l.tail {
		// Single element: clear both
		l.head = nil
		l.tail = nil
	} else if node == l.head {
		l.head = node.next
		if l.head != nil {
			l.head.prev = nil
		}
	} else if node == l.tail {
		l.tail = node.prev
		if l.tail != nil {
			l.tail.next = nil
		}
	} else {
		// Middle node: bridge neighbors
		node.prev.next = node.next
		node.next.prev = node.prev
	}
	// Clear the node's pointers
	node.prev = nil
	node.next = nil
}

// moveToFront moves an existing node to the head (most recently used).
func (l *recencyList) moveToFront(node *entry) {
	if node == l.head {
		return // Already at head
	}
	l.remove(node)
	l.pushFront(node)
}

// front returns the head of the list (most recently used).
func (l *recencyList) front() *entry {
	return l.head
}

// back returns the tail of the list (least recently used).
func (l *recencyList) back() *entry {
	return l.tail
}
