package service

import (
	"testing"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteFixture(t *testing.T) *NoteService {
	db := newTestDB(t)
	return NewNoteService(repository.NewNoteRepository(db))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, countWords(""))
	assert.Equal(t, 2, countWords("hello world"))
	assert.Equal(t, 4, countWords("智能合约"))         // 中文逐字计数
	assert.Equal(t, 6, countWords("EVM 是虚拟机 vm")) // 混排
}

func TestNoteCRUD(t *testing.T) {
	svc := newNoteFixture(t)

	note, err := svc.Create(1, "topic", "evm", "EVM 笔记", "栈式虚拟机", []string{"evm"})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, 5, note.WordCount)

	got, err := svc.Get(note.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "EVM 笔记", got.Title)

	// 别人的笔记取不到
	_, err = svc.Get(note.ID, 2)
	assert.ErrorIs(t, err, util.ErrNoteNotFound)

	newContent := "以太坊虚拟机"
	updated, err := svc.Update(note.ID, 1, NoteUpdate{Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.WordCount)
	assert.Equal(t, "EVM 笔记", updated.Title) // 缺省字段不变

	require.NoError(t, svc.Delete(note.ID, 1))
	_, err = svc.Get(note.ID, 1)
	assert.ErrorIs(t, err, util.ErrNoteNotFound)
}

func TestNoteRejectsBadReferenceType(t *testing.T) {
	svc := newNoteFixture(t)

	_, err := svc.Create(1, "chapter", "x", "t", "c", nil)
	assert.ErrorIs(t, err, util.ErrInvalidReference)
}

func TestNoteListPinnedFirst(t *testing.T) {
	svc := newNoteFixture(t)

	a, err := svc.Create(1, "module", "blockchain-basics", "A", "aa", nil)
	require.NoError(t, err)
	b, err := svc.Create(1, "module", "blockchain-basics", "B", "bb", nil)
	require.NoError(t, err)

	pinned := true
	_, err = svc.Update(a.ID, 1, NoteUpdate{Pinned: &pinned})
	require.NoError(t, err)

	notes, err := svc.List(1, "module", "blockchain-basics")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a.ID, notes[0].ID)
	assert.Equal(t, b.ID, notes[1].ID)
}
