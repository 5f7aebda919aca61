package downloader

import (
	"fmt"
	"sync"
)

func newFolderItem(meta *FileMeta, path string) *folderItem {
	return &folderItem{
		Meta: meta,
		Path: path,
	}
}

// folderItem pairs a remote folder with the local directory its contents
// land in.
type folderItem struct {
	Meta *FileMeta
	Path string
}

type node struct {
	Value *folderItem
	Next  *node
}

func newNode(val *folderItem) *node {
	return &node{
		Value: val,
		Next:  nil,
	}
}

func newFolderQueue() *folderQueue {
	q := &folderQueue{
		head:   nil,
		tail:   nil,
		length: 0,
	}
	return q
}

type folderQueue struct {
	head   *node
	tail   *node
	length int
	mut    sync.Mutex
}

func (q *folderQueue) Enqueue(val *folderItem) {
	q.mut.Lock()
	defer q.mut.Unlock()
	n := newNode(val)
	q.length += 1
	if q.head == nil { //make sure head never gets nil
		q.tail = n
		q.head = n
		return
	}

	q.tail.Next = n
	q.tail = n
}

func (q *folderQueue) Deque() *folderItem {
	q.mut.Lock()
	defer q.mut.Unlock()
	if q.head == nil {
		return nil
	}
	q.length -= 1
	head := q.head
	q.head = q.head.Next
	return head.Value
}

func (q *folderQueue) String() string {
	s := ""
	head := q.head
	for head != nil {
		s += fmt.Sprintf("%s,", head.Value.Path)
		head = head.Next
	}
	return fmt.Sprintf("queue[%s]", s)
}

func (q *folderQueue) Peek() *folderItem {
	if q.head == nil {
		return nil
	}
	return q.head.Value
}

func (q *folderQueue) Length() int {
	q.mut.Lock()
	defer q.mut.Unlock()
	return q.length
}

func (q *folderQueue) IsEmpty() bool {
	return q.Length() == 0
}
