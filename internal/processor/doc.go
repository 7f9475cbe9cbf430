// Package processor contains the core pipeline of xltranslate: it loads a
// workbook, translates every cell of its textual columns through the
// translation package, degrades failed cells to sentinel-tagged text, and
// writes the result. It also drives batch runs over several workbooks.
package processor
