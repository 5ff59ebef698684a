package ui

import "fmt"

func PrintWelcome() {
	fmt.Println(ColorBold + ColorCyan + "browserkit — консоль управления браузерной сессией" + ColorReset)
	fmt.Println(ColorGray + "Введите 'help' для списка команд" + ColorReset)
}

func PrintHelp() {
	fmt.Println(ColorBold + "Команды:" + ColorReset)
	fmt.Println("  open <url>              — запустить сессию и открыть URL")
	fmt.Println("  close                   — закрыть сессию")
	fmt.Println("  type <sel> <текст>      — очистить поле и ввести текст")
	fmt.Println("  select <sel> <текст>    — выбрать опцию по отображаемому тексту")
	fmt.Println("  alert accept|dismiss    — обработать нативный alert")
	fmt.Println("  window <индекс>         — переключиться на окно")
	fmt.Println("  shot <sel> <файл>       — скриншот элемента")
	fmt.Println("  shotpage <файл>         — скриншот всей страницы")
	fmt.Println("  scroll bottom           — прокрутить страницу вниз")
	fmt.Println("  scroll <sel>            — прокрутить к элементу")
	fmt.Println("  js <скрипт>             — выполнить скрипт на странице")
	fmt.Println("  url                     — текущий URL")
	fmt.Println("  present <sel>           — есть ли элемент на странице")
	fmt.Println("  sessions                — журнал сессий")
	fmt.Println("  actions <id>            — журнал действий сессии")
	fmt.Println("  clear | exit")
	fmt.Println(ColorGray + "Селектор: id=..., css=..., xpath=..., name=..., text=..., testid=... (без префикса — CSS)" + ColorReset)
}

func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
