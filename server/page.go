package server

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
  fieldset { margin-bottom: 1rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 0.3rem 0.5rem; text-align: left; }
  #status { color: #a00; }
  #transcript { white-space: pre-wrap; background: #f6f6f6; padding: 0.75rem; }
  button { margin-right: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

<fieldset>
  <legend>Upload a media file (MP4/MP3)</legend>
  <input type="file" id="file" accept=".mp3,.mp4,audio/*,video/*">
  <button id="upload-btn">Transcribe upload</button>
</fieldset>

<fieldset>
  <legend>Or paste a YouTube link</legend>
  <input type="url" id="url" size="50" placeholder="https://www.youtube.com/watch?v=...">
  <button id="url-btn">Transcribe URL</button>
</fieldset>

<fieldset>
  <legend>Key point spacing (seconds)</legend>
  <input type="number" id="interval" value="{{.DefaultInterval}}" min="1">
</fieldset>

<p id="status"></p>

<div id="result" style="display:none">
  <h2>Transcript</h2>
  <div id="transcript"></div>
  <p>
    <button id="dl-txt">Download transcript.txt</button>
    <button id="dl-csv">Download segments.csv</button>
  </p>
  <h2>Key points</h2>
  <ul id="keypoints"></ul>
  <h2>Segments</h2>
  <table>
    <thead><tr><th>Start</th><th>End</th><th>Text</th></tr></thead>
    <tbody id="segments"></tbody>
  </table>
</div>

<script>
let current = null;

function setStatus(msg) { document.getElementById('status').textContent = msg || ''; }

function render(result) {
  current = result;
  document.getElementById('result').style.display = '';
  document.getElementById('transcript').textContent = result.transcript;
  const kp = document.getElementById('keypoints');
  kp.innerHTML = '';
  for (const point of result.key_points || []) {
    const li = document.createElement('li');
    li.textContent = point;
    kp.appendChild(li);
  }
  const tbody = document.getElementById('segments');
  tbody.innerHTML = '';
  for (const seg of result.segments || []) {
    const tr = document.createElement('tr');
    for (const v of [seg.start.toFixed(2), seg.end.toFixed(2), seg.text]) {
      const td = document.createElement('td');
      td.textContent = v;
      tr.appendChild(td);
    }
    tbody.appendChild(tr);
  }
}

async function handle(resp) {
  const body = await resp.json();
  if (!resp.ok || body.status !== 'success') {
    setStatus(body.message || 'request failed');
    return;
  }
  setStatus('');
  render(body.data);
}

function interval() { return parseFloat(document.getElementById('interval').value) || undefined; }

document.getElementById('upload-btn').addEventListener('click', async () => {
  const input = document.getElementById('file');
  if (!input.files.length) { setStatus('choose a file first'); return; }
  setStatus('transcribing...');
  const form = new FormData();
  form.append('file', input.files[0]);
  if (interval()) form.append('interval', interval());
  handle(await fetch('/api/v1/transcriptions/upload', { method: 'POST', body: form }));
});

document.getElementById('url-btn').addEventListener('click', async () => {
  const url = document.getElementById('url').value.trim();
  if (!url) { setStatus('paste a URL first'); return; }
  setStatus('downloading and transcribing...');
  handle(await fetch('/api/v1/transcriptions/url', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ url: url, interval: interval() }),
  }));
});

async function download(endpoint, payload, filename) {
  const resp = await fetch(endpoint, {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(payload),
  });
  if (!resp.ok) { setStatus('export failed'); return; }
  const blob = await resp.blob();
  const a = document.createElement('a');
  a.href = URL.createObjectURL(blob);
  a.download = filename;
  a.click();
  URL.revokeObjectURL(a.href);
}

document.getElementById('dl-txt').addEventListener('click', () => {
  if (current) download('/api/v1/exports/transcript', { transcript: current.transcript }, 'transcript.txt');
});
document.getElementById('dl-csv').addEventListener('click', () => {
  if (current) download('/api/v1/exports/segments', { segments: current.segments }, 'segments.csv');
});
</script>
</body>
</html>`
