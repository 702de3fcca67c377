/*
Package handler provides the HTTP handlers and routing setup for the WeatherWorks front-end.

This file holds the embedded HTML templates for the start (login) and weather views.
*/
package handler

import "html/template"

var (
	tplLogin   = template.Must(template.New("login").Parse(loginHTML))
	tplWeather = template.Must(template.New("weather").Parse(weatherHTML))
)

type weatherPageData struct {
	UserName string
}

const loginHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>WeatherWorks</title>
  <style>
    body { font-family: system-ui, sans-serif; display: flex; justify-content: center; margin-top: 15vh; background: #eef3f8; }
    .card { background: #fff; padding: 2rem 2.5rem; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,.08); text-align: center; }
    input { padding: .5rem .75rem; font-size: 1rem; border: 1px solid #c6d2de; border-radius: 6px; }
    button { padding: .5rem 1.25rem; font-size: 1rem; margin-left: .5rem; border: 0; border-radius: 6px; background: #2a7de1; color: #fff; cursor: pointer; }
  </style>
</head>
<body>
  <div class="card">
    <h1>WeatherWorks</h1>
    <p>Enter your name to see your weather.</p>
    <form method="post" action="/login" autocomplete="off">
      <input type="text" name="userName" value="" placeholder="Your name" autofocus>
      <button type="submit">Start</button>
    </form>
  </div>
</body>
</html>`

const weatherHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>WeatherWorks – Weather</title>
  <style>
    body { font-family: system-ui, sans-serif; display: flex; justify-content: center; margin-top: 15vh; background: #eef3f8; }
    .card { background: #fff; padding: 2rem 2.5rem; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,.08); text-align: center; }
    button { padding: .4rem 1rem; border: 0; border-radius: 6px; background: #aab8c6; color: #fff; cursor: pointer; }
  </style>
</head>
<body>
  <div class="card">
    <h1>Hello, {{.UserName}}</h1>
    <p>Your weather view is ready.</p>
    <form method="post" action="/logout">
      <button type="submit">Sign out</button>
    </form>
  </div>
</body>
</html>`
