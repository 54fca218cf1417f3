/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Fri Mar 16 11:09:12 2018 mstenber
 * Last modified: Tue Mar 28 09:55:40 2023 mstenber
 * Edit time:     141 min
 *
 */

// cache provides CART (Clock with Adaptive Replacement and Temporal
// filtering) cache map of K to V.
//
// For details about CART, see:
// Bansal & Modha 2004, CAR: Clock with Adaptive Replacement paper.
//
// The four CART lists are list.List instances; every entry remembers
// its position in the list it is in, so moving entries between lists
// is O(1).
package cache

import (
	"fmt"

	"github.com/QThund/Zunderbolt-sub017/list"
	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/QThund/Zunderbolt-sub017/util"
)

// Cart is the cache itself. The type is not threadsafe.
//
// variables are as close as possible to ones in paper
type Cart[K comparable, V any] struct {
	// cache is the lookup map for entries in T[n] / B[n]
	cache map[K]*cartEntry[K, V]

	t1, t2, b1, b2 *list.List[*cartEntry[K, V]]

	c, p, q, ns, nl int
	// c = maximum size
	// p = maximum length of t1
	// q = maximum length of b1
	// ns = number of short-lived entries (in t1+t2)
	// nl = number of long-lived entries (in t1+t2)
}

// cartEntry represents a single cache entry; map points at it under key
type cartEntry[K comparable, V any] struct {
	key                K
	position           list.Iterator[*cartEntry[K, V]]
	refbit, filterlong bool
	frequentbit        bool // if it is in 2 series of lists
	present            bool // if it is in t1/t2 (and value is valid)
	value              V
}

func (self *cartEntry[K, V]) String() string {
	return fmt.Sprintf("ce{%v,r:%v,l:%v,f:%v}", self.key, self.refbit, self.filterlong, self.frequentbit)
}

func (self Cart[K, V]) Init(maximumSize int) *Cart[K, V] {
	self.cache = make(map[K]*cartEntry[K, V])
	self.c = maximumSize
	capacity := util.IMax(1, maximumSize)
	self.t1 = list.List[*cartEntry[K, V]]{}.Init(capacity)
	self.t2 = list.List[*cartEntry[K, V]]{}.Init(capacity)
	self.b1 = list.List[*cartEntry[K, V]]{}.Init(capacity)
	self.b2 = list.List[*cartEntry[K, V]]{}.Init(capacity)
	return &self
}

func (self *Cart[K, V]) String() string {
	return fmt.Sprintf("Cart<%d/%d t1:%d t2:%d b1:%d b2:%d p:%d q:%d>",
		self.Len(), self.c, self.t1.GetCount(), self.t2.GetCount(),
		self.b1.GetCount(), self.b2.GetCount(), self.p, self.q)
}

func pushBack[K comparable, V any](l *list.List[*cartEntry[K, V]], e *cartEntry[K, V]) {
	if err := l.Add(e); err != nil {
		mlog.Panicf("cart pushBack: %w", err)
	}
	e.position = l.GetLast()
}

func remove[K comparable, V any](l *list.List[*cartEntry[K, V]], e *cartEntry[K, V]) {
	l.Remove(e.position)
}

func front[K comparable, V any](l *list.List[*cartEntry[K, V]]) *cartEntry[K, V] {
	it := l.GetFirst()
	if it.IsEnd() {
		return nil
	}
	return it.Value()
}

// Len returns the number of values in the cache.
func (self *Cart[K, V]) Len() int {
	return self.t1.GetCount() + self.t2.GetCount()
}

// Get retrieves the key, and returns the value if found, and
// indicates in found if it was found or not.
func (self *Cart[K, V]) Get(key K) (value V, found bool) {
	mlog.Printf2("cache/cart", "cart.Get %v", key)
	e, found := self.cache[key]
	if !found {
		mlog.Printf2("cache/cart", " not in t/b")
		return
	}
	if !e.present {
		mlog.Printf2("cache/cart", " not in t")
		found = false
		return
	}
	mlog.Printf2("cache/cart", " found")
	e.refbit = true
	value = e.value
	return
}

// GetOrCreate uses Get first, and then calls factory if Get
// fails. The value is returned, as well as whether or not it was
// created.
func (self *Cart[K, V]) GetOrCreate(key K, factory func(key K) V) (value V, created bool) {
	value, found := self.Get(key)
	if found {
		return value, false
	}
	value = factory(key)
	self.Set(key, value)
	return value, true
}

// Delete removes the key from the cache (and its history).
func (self *Cart[K, V]) Delete(key K) bool {
	mlog.Printf2("cache/cart", "cart.Delete %v", key)
	e, found := self.cache[key]
	if !found {
		return false
	}
	delete(self.cache, key)
	switch {
	case !e.present && e.frequentbit:
		remove(self.b2, e)
	case !e.present:
		remove(self.b1, e)
	default:
		if e.frequentbit {
			remove(self.t2, e)
		} else {
			remove(self.t1, e)
		}
		if e.filterlong {
			self.nl--
		} else {
			self.ns--
		}
	}
	return e.present
}

// Set sets the key to value.
func (self *Cart[K, V]) Set(key K, value V) {
	mlog.Printf2("cache/cart", "cart.Set %v", key)
	if self.c == 0 {
		mlog.Printf2("cache/cart", " not enabled")
		return
	}
	e, found := self.cache[key]
	if found && e.present {
		// cache hit
		e.refbit = true
		e.value = value
		return
	}
	if self.Len() == self.c {
		mlog.Printf2("cache/cart", " cache full")
		// cache full; replace page from cache
		self.replace()

		// also clear history space if it missed altogether
		// and history is full
		if !found && self.b1.GetCount()+self.b2.GetCount() > self.c {
			if self.b1.GetCount() > self.q || self.b2.IsEmpty() {
				mlog.Printf2("cache/cart", " bumped from b1")
				f := front(self.b1)
				delete(self.cache, f.key)
				remove(self.b1, f)
			} else {
				mlog.Printf2("cache/cart", " bumped from b2")
				f := front(self.b2)
				delete(self.cache, f.key)
				remove(self.b2, f)
			}
		}
	}

	if !found {
		mlog.Printf2("cache/cart", " added fresh")
		e := &cartEntry[K, V]{key: key, value: value, present: true}
		self.cache[key] = e
		pushBack(self.t1, e)
		self.ns++
		return
	}

	if !e.frequentbit {
		mlog.Printf2("cache/cart", " b1->t1")
		self.p = util.IMin(self.p+util.IMax(1, self.ns/self.b1.GetCount()), self.c)
		mlog.Printf2("cache/cart", "  p = %d", self.p)
		e.filterlong = true
		remove(self.b1, e)
	} else {
		mlog.Printf2("cache/cart", " b2->t1")
		e.frequentbit = false
		self.p = util.IMax(self.p-util.IMax(1, self.nl/self.b2.GetCount()), 0)
		mlog.Printf2("cache/cart", "  p = %d", self.p)
		remove(self.b2, e)
		if self.t2.GetCount()+self.b2.GetCount()+self.t1.GetCount()-self.ns >= self.c {
			self.q = util.IMin(self.q+1, 2*self.c-self.t1.GetCount())
			mlog.Printf2("cache/cart", "  q = %d", self.q)
		}
		// as it comes from b2, it already has filterlong set
	}
	pushBack(self.t1, e)
	e.value = value
	e.present = true
	e.refbit = false
	self.nl++
}

func (self *Cart[K, V]) evict(e *cartEntry[K, V]) {
	var zero V
	e.value = zero
	e.present = false
}

func (self *Cart[K, V]) replace() {
	// replace() in the paper p11
	mlog.Printf2("cache/cart", "replace()")
	for e := front(self.t2); e != nil && e.refbit; e = front(self.t2) {
		mlog.Printf2("cache/cart", " moving %s t2->t1", e)
		remove(self.t2, e)

		e.refbit = false
		e.frequentbit = false
		pushBack(self.t1, e)

		if self.t2.GetCount()+self.b2.GetCount()+self.t1.GetCount()-self.ns >= self.c {
			self.q = util.IMin(self.q+1, self.c*2-self.t1.GetCount())
			mlog.Printf2("cache/cart", "  q = %d", self.q)
		}
	}
	for e := front(self.t1); e != nil && (e.filterlong || e.refbit); e = front(self.t1) {
		if e.refbit {
			mlog.Printf2("cache/cart", " moving to head of t1 %v", e)
			remove(self.t1, e)
			pushBack(self.t1, e)
			e.refbit = false
			if self.t1.GetCount() >= util.IMin(self.p+1, self.b1.GetCount()) && !e.filterlong {
				e.filterlong = true
				self.ns--
				self.nl++
			}
		} else {
			mlog.Printf2("cache/cart", " promoting t1->t2 %v", e)
			remove(self.t1, e)

			pushBack(self.t2, e)
			self.q = util.IMax(self.q-1, self.c-self.t1.GetCount())
			mlog.Printf2("cache/cart", "  q = %d", self.q)
			e.frequentbit = true
		}
	}
	if self.t1.GetCount() >= util.IMax(1, self.p) {
		e := front(self.t1)
		mlog.Printf2("cache/cart", " evicting %v from t1", e)
		self.evict(e)
		remove(self.t1, e)
		pushBack(self.b1, e)
		self.ns--
	} else {
		e := front(self.t2)
		mlog.Printf2("cache/cart", " evicting %v from t2", e)
		self.evict(e)
		remove(self.t2, e)
		pushBack(self.b2, e)
		self.nl--
	}
}
