//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFilterByPropertyType(t *testing.T) {
	t.Parallel()
	tf, _ := startWithBackend(t, 30)
	require.True(t, tf.OutputContainsPlain("Page 1 of 3", 5*time.Second))

	require.NoError(t, tf.OpenFilters())
	require.True(t, tf.SeePlain("Price Range"), "filter editor should open")
	require.True(t, tf.SeePlain("Property Type"))

	// property type row, House
	require.NoError(t, tf.SendKeys(KeyTab))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeySpace))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys("a"))

	require.True(t, tf.SeePlain("Showing 15 of 30 properties"), "filtered count should show")
	require.True(t, tf.SeePlain("Type: house"), "tag should show")
	require.True(t, tf.SeePlain("Page 1 of 2"))

	require.NoError(t, tf.SendKeys("c"))
	require.True(t, tf.SeePlain("Filters cleared"))
}

func TestFilterPriceTyped(t *testing.T) {
	t.Parallel()
	tf, _ := startWithBackend(t, 30)
	require.True(t, tf.OutputContainsPlain("Page 1 of 3", 5*time.Second))

	require.NoError(t, tf.OpenFilters())
	require.True(t, tf.SeePlain("Price Range"))
	require.NoError(t, tf.SendKeys("m"))
	for _, r := range "3500" {
		require.NoError(t, tf.SendKeys(string(r)))
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, tf.SendEnter())
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tf.SendKeys("a"))

	require.True(t, tf.SeePlain("Showing 5 of 30 properties"))
	require.True(t, tf.SeePlain("Stay 29"))
}

func TestFilterNoMatches(t *testing.T) {
	t.Parallel()
	tf, _ := startWithBackend(t, 4)
	require.True(t, tf.OutputContainsPlain("Stay 03", 5*time.Second))

	require.NoError(t, tf.OpenFilters())
	require.True(t, tf.SeePlain("Price Range"))
	// hotel is the fourth property type
	for _, k := range []string{KeyTab, "l", "l", "l", KeySpace, "a"} {
		require.NoError(t, tf.SendKeys(k))
		time.Sleep(50 * time.Millisecond)
	}
	require.True(t, tf.SeePlain("No properties match your filters"))
}

func TestFilterEscapeDiscards(t *testing.T) {
	t.Parallel()
	tf, _ := startWithBackend(t, 30)
	require.True(t, tf.OutputContainsPlain("Page 1 of 3", 5*time.Second))

	for _, k := range []string{KeyFilter, KeyTab, KeySpace} {
		require.NoError(t, tf.SendKeys(k))
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, tf.SendKeys(KeyEsc))
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, tf.NextPage())
	require.True(t, tf.SeePlain("Page 2 of 3"), "no filter should have been applied")
}
