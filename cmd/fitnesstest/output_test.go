package main

import (
	"github.com/stretchr/testify/suite"
)

// OutputSuite проверяет вывод программы на эталонных пакетах
type OutputSuite struct {
	suite.Suite
}

// TestReferenceLines сверяет вывод программы со значениями, рассчитанными по эталонным формулам
func (suite *OutputSuite) TestReferenceLines() {
	e := New(suite.T())
	res := RunFtracker(e)

	e.Equal(0, res.ExitCode, "Программа должна завершаться с кодом 0. Stderr:\n%s", res.Stderr)
	e.Equal(referenceLines(), res.Lines(), "Вывод программы не совпадает с ожидаемым")
}

// TestExactOutput сверяет вывод программы побайтно
func (suite *OutputSuite) TestExactOutput() {
	e := New(suite.T())
	res := RunFtracker(e)

	expected := "Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg. speed: 1.000 km/h; Calories burned: 336.000.\n" +
		"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 797.805.\n" +
		"Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg. speed: 5.850 km/h; Calories burned: 349.252.\n"
	e.Equal(expected, res.Stdout, "Вывод программы не совпадает с ожидаемым")
}
