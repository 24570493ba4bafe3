package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_Add_existElement_moveToFront(t *testing.T) {
	//Arrange
	lru := NewLRU(3)
	lru.Add("123today", "report one")
	lru.Add("123week", "report two")

	//Act
	lru.Add("123today", "report updated")

	//Assert
	frontItem := lru.queue.Front().Value.(*Item)
	assert.Equal(t, "123today", frontItem.Key)
	assert.Equal(t, "report updated", frontItem.Value)
	assert.Equal(t, 2, lru.Len())
}

func TestLRU_Add_newElementWithFullQueue_evictOldest(t *testing.T) {
	//Arrange
	lru := NewLRU(2)
	lru.Add("123today", "report one")
	lru.Add("123week", "report two")

	//Act
	lru.Add("456month", "report three")

	//Assert
	assert.Nil(t, lru.Get("123today"))
	assert.Equal(t, "report two", lru.Get("123week"))
	assert.Equal(t, "report three", lru.Get("456month"))
	assert.Equal(t, 2, lru.Len())
}

func TestLRU_Get_movesElementToFront(t *testing.T) {
	//Arrange
	lru := NewLRU(2)
	lru.Add("123today", "report one")
	lru.Add("123week", "report two")

	//Act
	_ = lru.Get("123today")
	lru.Add("456month", "report three")

	//Assert
	// Самым давно не использованным стал "123week", вытеснен должен быть он.
	assert.Equal(t, "report one", lru.Get("123today"))
	assert.Nil(t, lru.Get("123week"))
}

func TestLRU_Get_hasNotElement_returnNil(t *testing.T) {
	lru := NewLRU(2)
	lru.Add("123today", "report one")

	assert.Nil(t, lru.Get("456today"))
}

func TestLRU_Remove_hasElement_removeIt(t *testing.T) {
	//Arrange
	lru := NewLRU(3)
	lru.Add("123today", "report one")
	lru.Add("123week", "report two")

	//Act
	lru.Remove("123today")

	//Assert
	assert.Nil(t, lru.Get("123today"))
	assert.Equal(t, "report two", lru.Get("123week"))
	assert.Equal(t, 1, lru.Len())
}

func TestLRU_Remove_hasNotElement_doNothing(t *testing.T) {
	lru := NewLRU(3)
	lru.Add("123today", "report one")

	lru.Remove("123year")

	assert.Equal(t, 1, lru.Len())
}

func TestLRU_Add_concurrent_allKeysExist(t *testing.T) {
	//Arrange
	wg := sync.WaitGroup{}
	lru := NewLRU(3)
	wg.Add(3)

	//Act
	go func() {
		lru.Add("123today", "report one")
		wg.Done()
	}()
	go func() {
		lru.Add("123week", "report two")
		wg.Done()
	}()
	go func() {
		lru.Add("123month", "report three")
		wg.Done()
	}()

	wg.Wait()

	//Assert
	assert.Equal(t, "report one", lru.Get("123today"))
	assert.Equal(t, "report two", lru.Get("123week"))
	assert.Equal(t, "report three", lru.Get("123month"))
	assert.Equal(t, 3, lru.Len())
}
